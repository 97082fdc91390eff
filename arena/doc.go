// Package arena implements the pong game core: shapes in normalized device
// coordinates, collision resolution, the ball and the two paddles, and the
// per-frame driver that runs the active game state.
//
// A frontend owns the window or terminal. Each frame it builds an Input
// snapshot of the held logical keys and calls Driver.Update followed by
// Driver.Draw with a Canvas that maps NDC onto its surface.
package arena
