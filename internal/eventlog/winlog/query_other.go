//go:build !windows

package winlog

import (
	"context"
	"fmt"
	"runtime"

	"github.com/crimson-sun/crashlens/internal/eventlog"
)

func queryChannel(ctx context.Context, channel, xpath string) ([]string, error) {
	return nil, fmt.Errorf("%w: windows source not supported on %s", eventlog.ErrSourceUnavailable, runtime.GOOS)
}
