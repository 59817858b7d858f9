package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofPrefix is where the profiling endpoints are mounted. pprof.Index
// resolves named profiles relative to it, so it cannot be changed.
const PprofPrefix = "/debug/pprof/"

// PprofMux returns a mux serving net/http/pprof under PprofPrefix, including
// the named runtime profiles (heap, goroutine, allocs, block, mutex).
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc(PprofPrefix, pprof.Index)
	mux.HandleFunc(PprofPrefix+"cmdline", pprof.Cmdline)
	mux.HandleFunc(PprofPrefix+"profile", pprof.Profile)
	mux.HandleFunc(PprofPrefix+"symbol", pprof.Symbol)
	mux.HandleFunc(PprofPrefix+"trace", pprof.Trace)

	return mux
}
