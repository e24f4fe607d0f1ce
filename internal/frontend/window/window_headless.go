//go:build headless

package window

import (
	"context"

	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

// Run returns ErrNotSupported, the build has no window support.
func Run(_ context.Context, _ *log.Logger, _ *runner.Scheduler, _ Options) error {
	return ErrNotSupported
}
