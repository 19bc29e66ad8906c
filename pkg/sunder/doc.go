// Package sunder defines how a widget is rendered against interchangeable backends.
//
// GUI code has two hard parts: delivering events and deciding what to redraw,
// and drawing widgets and reacting to input. This package covers the second
// so that a framework can concentrate on the first.
//
// A widget is split into three pieces of data with different owners:
//
//   - The description (a Label's text, a button's caption) is the widget
//     value itself. It changes only when the surrounding composition changes it.
//   - The immediate state S (is the button pressed) is owned by the framework,
//     mutated by [Widget.HandleEvent] and read by [RenderedWidget.Render].
//   - The cache C holds backend-specific derived data, such as a shaped text
//     layout. It is owned next to the widget and refreshed lazily by
//     [RenderedWidget.Rectangle] and [RenderedWidget.Render] whenever it no
//     longer matches the description.
//
// The zero values of S and C are valid starting points. A cache is stale
// exactly when the values it was built from differ from the live
// description; there is no dirty flag and no explicit invalidation.
//
// Backends are rendering targets such as a vector-graphics context
// (package canvas) or an HTML node tree (package dom). Each backend has its
// own error type and its own output type O. Widgets return backend errors
// unchanged.
//
// Rendering is synchronous. A render pass never blocks on anything except
// the backend itself; waiting for the next frame is the job of the driving
// loop in package engine.
package sunder
