package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofMux builds a ServeMux with the net/http/pprof handlers rooted at "/",
// meant to be mounted behind a debug prefix by the API server.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", pprof.Index)
	mux.HandleFunc("/cmdline", pprof.Cmdline)
	mux.HandleFunc("/profile", pprof.Profile)
	mux.HandleFunc("/symbol", pprof.Symbol)
	mux.HandleFunc("/trace", pprof.Trace)

	return mux
}
