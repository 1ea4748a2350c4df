package particles

//Dispatcher renders emission points into the world. It is owned by the host; the
//engine and the event adapter only call it.
type Dispatcher interface {
	Display(a *Actor, cfg *EffectConfig, origin Vec, pts []Point)
}

//DispatcherFunc adapts a plain function to Dispatcher
type DispatcherFunc func(a *Actor, cfg *EffectConfig, origin Vec, pts []Point)

func (f DispatcherFunc) Display(a *Actor, cfg *EffectConfig, origin Vec, pts []Point) {
	f(a, cfg, origin, pts)
}
