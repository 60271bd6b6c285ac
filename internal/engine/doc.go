// Package engine wires the zoom pipeline into a frame-driven animation.
//
// Each accepted tick runs, in order: the navigation step, the field render,
// target selection and presentation to the host surface. Hosts drive an
// [Animation] by calling OnFrame with elapsed seconds; a tick runs once the
// accumulated time exceeds [Options].Tick.
//
//	anim, err := engine.New(engine.DefaultOptions(), surface)
//	if err != nil {
//		return err
//	}
//	anim.AddMetric(metrics.NewDrawSavings())
//	host.Run(ctx, anim, time.Second/60)
package engine
