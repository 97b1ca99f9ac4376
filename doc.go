// Package waves computes animated decorative curves for a screen surface:
// horizontally scrolling sine wave silhouettes layered at the bottom of a
// view, and wobbling blobs whose outline is a smooth closed curve through a
// ring of randomly moving points.
//
// The package doesn't draw anything. It produces Bézier paths, translations
// and gradient descriptions, and leaves rasterization to its host. The
// commands in cmd/ are hosts for a terminal, a window, PNG files, and an
// interactive console.
//
// # Scenes
//
// [Scene] is the surface a host talks to. Shapes are added with
// [Scene.AddWaveLayer] and [Scene.AddBlob]. The host reports its size with
// [Scene.OnViewportResize], calls [Scene.Tick] once per render pass, and then
// pulls one [Frame] per shape with [Scene.CurrentPath]. Animation is
// controlled with [Scene.Start], [Scene.Pause], [Scene.Resume] and
// [Scene.Stop].
//
// # Smooth paths
//
// All curves are built by [Smoother], which turns a sequence of anchor
// points into cubic Béziers passing through every anchor. The tangent at
// each anchor is a fixed fraction ([DefaultSmoothing]) of the vector between
// its neighbours, which makes the path C¹ continuous. Open curves clamp at
// their ends, closed curves wrap around, and guarded curves take their end
// tangents from extra samples that aren't drawn.
//
// # Waves
//
// A wave layer ([WaveParameters]) is a sine sampled at a fixed step across
// the view plus one wavelength on either side ([WaveProfile]). Its
// silhouette is closed along the bottom of the view so that it can be
// filled. Scrolling doesn't resample the sine: the path is translated by a
// fraction of the wavelength instead. Parameters carry scale factors that
// can be changed at runtime with [Scene.UpdateScale].
//
// # Blobs
//
// A blob ([BlobParameters], [BlobProfile]) is a ring of points around a
// center. Each point's radius moves between two random radii, following a
// bouncing sequence of key frames ([Bounce], [Keyframes]) at its own speed.
// The center itself follows a bounded [RandomWalk] around the middle of the
// view.
//
// # Time
//
// Animation time comes from a [Clock]. Every shape is driven by one or more
// [LoopTimer] values, linear progress generators that loop forever. All
// timers of a scene belong to one [TimerGroup], which samples the clock
// once per Tick so that every shape agrees on the time of a frame. Pausing
// freezes animation time; it doesn't skip ahead on resume.
package waves
