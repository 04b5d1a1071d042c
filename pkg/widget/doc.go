// Package widget is a headless retained-mode widget toolkit.
//
// It plays the role of the native component library the binding layer
// dispatches against: components carry a name and a kind, expose native
// property accessors, and accept native listeners that fire synchronously
// when the user interacts with them. Nothing here knows about events,
// channels or models.
//
// User interactions are simulated through methods such as Button.Click,
// Frame.RequestClose, List.Select and TextField.Type. Programmatic changes
// (SetText, SetSelectionInterval, Dispose) go through the same native paths
// and fire the same listeners, exactly as a real toolkit would.
//
// Components are not safe for concurrent use; drive them from one goroutine
// (see package uithread).
package widget
