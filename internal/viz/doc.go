// Package viz is the terminal host for the zoom animation, built on Bubble
// Tea.
//
//   - [Canvas]: host surface that packs two pixel rows into each terminal
//     line with the ▀ half block
//   - [Model]: live view with the canvas on the left and a stats panel
//     (zoom-depth chart, center, cap, draw calls) on the right
//   - [NewPicker]: preset menu that starts a live view
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Restart from the initial view
//	T     - Cycle panel themes
//	G     - Toggle GIF recording
//	?     - Show help overlay
//
// Recordings are written to fractalzoom.gif in the current directory.
package viz
