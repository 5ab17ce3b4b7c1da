// Package analysis derives inspection data from strip geometry: refinement
// studies of the numeric integrals and sampled curves for terminal plots.
package analysis
