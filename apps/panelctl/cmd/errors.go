package cmd

import (
	"log"

	"github.com/minhtan/hostpanel/pkg/psdk/perr"
)

// exitIfSdkError inspects errors returned from the SDK and emits user-friendly
// guidance before exiting. Non-SDK errors fall back to log.Fatalf.
func exitIfSdkError(err error) {
	if err == nil {
		return
	}
	switch {
	case perr.IsCode(err, perr.CodeUnauthorized):
		log.Fatalf("authentication required: run 'panelctl auth login' (%v)", err)
	case perr.IsCode(err, perr.CodeRefreshFailed):
		log.Fatalf("session expired: run 'panelctl auth login' (%v)", err)
	case perr.IsCode(err, perr.CodeTimeout):
		log.Fatalf("request timed out: is the API reachable? (%v)", err)
	case perr.IsCode(err, perr.CodeNetwork):
		log.Fatalf("network error: check base-url and connectivity (%v)", err)
	default:
		log.Fatalf("%v", err)
	}
}
