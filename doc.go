// Package plotkit is a small 2D plotting library with pluggable rendering
// backends.
//
// # Overview
//
// plotkit draws line and scatter plots into pixel buffers and writes them as
// PNG files. Rendering goes through a Canvas, which a backend provides: the
// built-in software canvas rasterizes on the CPU, and the backend registry
// (see the backend package) allows GPU or plugin backends to take over the
// same work.
//
// # Quick Start
//
//	fig := plotkit.NewFigure(plotkit.WithSize(640, 480))
//	ax := fig.AddAxes()
//	ax.Plot(xs, ys)
//	ax.SetTitle("Damped oscillation")
//	fig.SavePNG("out.png")
//
// For a stateful, current-figure style of plotting see the plt package:
//
//	plt.Plot(xs, ys)
//	plt.Title("Damped oscillation")
//	plt.SavePNG("out.png")
//
// # Backends
//
// Backends register themselves with the backend package and are activated
// with backend.Use. The backend/agg software backend is always usable; the
// backend/gpu backend activates only where a GPU adapter is present. The
// backend.Inspector discovers which backend plugins are installed and probes
// which of them actually activate in the current environment.
package plotkit
