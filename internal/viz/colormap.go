package viz

import "fmt"

// Colormap maps a normalized value t ∈ [0,1] to a hex color.
type Colormap struct {
	Name    string
	anchors []string
}

var colormaps = []Colormap{
	{"viridis", []string{"#440154", "#31688e", "#35b779", "#fde725"}},
	{"plasma", []string{"#0d0887", "#9c179e", "#ed7953", "#f0f921"}},
	{"inferno", []string{"#000004", "#781c6d", "#ed6925", "#fcffa4"}},
	{"gray", []string{"#222222", "#eeeeee"}},
}

// GetColormap resolves a colormap by name, falling back to viridis for
// unknown names. Colormap choice is presentation only and never an error.
func GetColormap(name string) Colormap {
	for _, cm := range colormaps {
		if cm.Name == name {
			return cm
		}
	}
	return colormaps[0]
}

// ColormapNames returns the recognized colormap names.
func ColormapNames() []string {
	names := make([]string, len(colormaps))
	for i, cm := range colormaps {
		names[i] = cm.Name
	}
	return names
}

// At interpolates the colormap at t, clamped to [0,1].
func (cm Colormap) At(t float64) string {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	segs := len(cm.anchors) - 1
	pos := t * float64(segs)
	i := int(pos)
	if i >= segs {
		i = segs - 1
	}
	return lerpHex(cm.anchors[i], cm.anchors[i+1], pos-float64(i))
}

func lerpHex(a, b string, t float64) string {
	ar, ag, ab := parseHex(a)
	br, bg, bb := parseHex(b)
	r := ar + int(t*float64(br-ar))
	g := ag + int(t*float64(bg-ag))
	bl := ab + int(t*float64(bb-ab))
	return fmt.Sprintf("#%02x%02x%02x", r, g, bl)
}

func parseHex(s string) (r, g, b int) {
	fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b)
	return r, g, b
}
