// Package gui is the desktop host for the zoom animation, built on raylib.
// Frames are drawn into a render texture and scaled to fit the window.
package gui
