//go:build windows

package winlog

import (
	"context"
	"errors"
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/crimson-sun/crashlens/internal/eventlog"
)

var (
	modwevtapi    = windows.NewLazySystemDLL("wevtapi.dll")
	procEvtQuery  = modwevtapi.NewProc("EvtQuery")
	procEvtNext   = modwevtapi.NewProc("EvtNext")
	procEvtRender = modwevtapi.NewProc("EvtRender")
	procEvtClose  = modwevtapi.NewProc("EvtClose")
)

const (
	evtQueryChannelPath      = 0x1
	evtQueryReverseDirection = 0x200
	evtRenderEventXML        = 1

	// ERROR_EVT_CHANNEL_NOT_FOUND
	errEvtChannelNotFound = syscall.Errno(15007)

	evtNextBatchSize = 64
	evtNextTimeoutMS = 2000
)

// queryChannel runs one EvtQuery against a channel and drains it, returning
// each event rendered as XML. The query handle and every event handle are
// closed before return on all paths.
func queryChannel(ctx context.Context, channel, xpath string) ([]string, error) {
	channelPtr, err := windows.UTF16PtrFromString(channel)
	if err != nil {
		return nil, fmt.Errorf("channel name: %w", err)
	}
	queryPtr, err := windows.UTF16PtrFromString(xpath)
	if err != nil {
		return nil, fmt.Errorf("query string: %w", err)
	}

	h, _, callErr := procEvtQuery.Call(
		0,
		uintptr(unsafe.Pointer(channelPtr)),
		uintptr(unsafe.Pointer(queryPtr)),
		evtQueryChannelPath|evtQueryReverseDirection,
	)
	if h == 0 {
		return nil, mapSysError(callErr)
	}
	defer procEvtClose.Call(h) //nolint:errcheck

	var events []string
	handles := make([]uintptr, evtNextBatchSize)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var returned uint32
		ok, _, callErr := procEvtNext.Call(
			h,
			uintptr(len(handles)),
			uintptr(unsafe.Pointer(&handles[0])),
			evtNextTimeoutMS,
			0,
			uintptr(unsafe.Pointer(&returned)),
		)
		if ok == 0 {
			if errors.Is(callErr, windows.ERROR_NO_MORE_ITEMS) {
				break
			}
			return nil, mapSysError(callErr)
		}

		for i := uint32(0); i < returned; i++ {
			raw, rerr := renderXML(handles[i])
			procEvtClose.Call(handles[i]) //nolint:errcheck
			if rerr != nil {
				// Close the rest of the batch before bailing.
				for j := i + 1; j < returned; j++ {
					procEvtClose.Call(handles[j]) //nolint:errcheck
				}
				return nil, rerr
			}
			events = append(events, raw)
		}
	}
	return events, nil
}

// renderXML renders an event handle to its XML representation. Two calls:
// the first probes the required buffer size.
func renderXML(h uintptr) (string, error) {
	var bufUsed, propCount uint32
	r, _, callErr := procEvtRender.Call(
		0, h, evtRenderEventXML,
		0, 0,
		uintptr(unsafe.Pointer(&bufUsed)),
		uintptr(unsafe.Pointer(&propCount)),
	)
	if r == 0 && !errors.Is(callErr, windows.ERROR_INSUFFICIENT_BUFFER) {
		return "", fmt.Errorf("render probe: %w", mapSysError(callErr))
	}
	if bufUsed == 0 {
		return "", nil
	}

	buf := make([]uint16, bufUsed/2+1)
	r, _, callErr = procEvtRender.Call(
		0, h, evtRenderEventXML,
		uintptr(bufUsed),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(unsafe.Pointer(&bufUsed)),
		uintptr(unsafe.Pointer(&propCount)),
	)
	if r == 0 {
		return "", fmt.Errorf("render: %w", mapSysError(callErr))
	}
	return windows.UTF16ToString(buf), nil
}

// mapSysError translates wevtapi errnos into the package error taxonomy.
func mapSysError(err error) error {
	switch {
	case errors.Is(err, windows.ERROR_ACCESS_DENIED):
		return eventlog.ErrAccessDenied
	case errors.Is(err, errEvtChannelNotFound):
		return eventlog.ErrSourceUnavailable
	}
	return err
}
