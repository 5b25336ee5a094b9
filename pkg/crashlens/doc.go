// Package crashlens finds and explains application crashes recorded in the
// Windows Event Log.
//
// Quick start:
//
//	f, err := crashlens.New(crashlens.WithDeepScan(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rep, err := f.Find(ctx, `C:\Games\Foo\bin\Win64\Foo.exe`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, e := range rep.Entries {
//	    fmt.Println(e.Timestamp, e.Category, e.Summary)
//	}
//
// A Finder is safe for concurrent use; each Find call runs an independent
// search with no shared state.
package crashlens
