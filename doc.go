// Package pencil is a minimal retained-mode 2D scene graph.
//
// A [Scene] is the root of a tree of drawable nodes. It is bound to a
// [Host] (a window, a page element, a headless viewport), draws into a
// [Surface] and turns raw pointer input from an [InputSource] into
// semantic events on the nodes under the pointer.
//
// # Quick start
//
//	in := pencil.NewInjector()
//	scene, err := pencil.NewScene(pencil.SceneConfig{Host: host, Input: in},
//		pencil.WithFill("#202030"))
//	if err != nil {
//		return err
//	}
//
//	tri, err := pencil.NewPolygon([]pencil.Position{{0, 0}, {100, 0}, {50, 80}},
//		pencil.WithFill("tomato"), pencil.WithCursor(pencil.CursorPointer))
//	if err != nil {
//		return err
//	}
//	tri.On(pencil.EventClick, func(e *pencil.Event) { tri.Options().Fill = "gold" })
//	scene.Add(tri)
//
//	return scene.StartLoop()
//
// # Nodes
//
// Every node embeds [Component], which carries its position, [Options],
// tree links and event listeners. [Polygon] draws a closed outline and uses
// an even-odd ray-crossing test for hits; [Container] only groups other
// nodes. Children are positioned relative to their parent's anchor and the
// last child added is drawn on top and hit first.
//
// # Events
//
// For each raw event the scene resolves the topmost node under the pointer
// (the scene itself when nothing else is hit), fires the generic event named
// after the raw kind ([EventMouseDown], [EventMouseMove], [EventMouseUp],
// [EventMouseWheel]) and then the derived ones: [EventHover], [EventLeave],
// [EventClick], [EventScrollUp]/[EventZoomIn] and
// [EventScrollDown]/[EventZoomOut]. Events bubble to ancestors until
// [Event.Stop] is called. [EventDraw] fires on the scene before each frame
// is drawn.
//
// # Frames
//
// [Scene.StartLoop] renders a frame and requests the next one from the
// [Scheduler]; [Scene.StopLoop] cancels the pending request. [FrameQueue]
// is a scheduler driven by explicit Flush calls, used by the headless host
// and tests. Hosts live in sub-packages: ebitenhost for a desktop window,
// remote for a websocket-driven headless server.
package pencil
