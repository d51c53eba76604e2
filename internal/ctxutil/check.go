// Package ctxutil holds small context helpers shared by the signing and server packages.
package ctxutil

import "context"

// Canceled returns ctx.Err(): nil while the context is live, otherwise
// context.Canceled or context.DeadlineExceeded. Call it at operation entry.
func Canceled(ctx context.Context) error {
	return ctx.Err()
}
