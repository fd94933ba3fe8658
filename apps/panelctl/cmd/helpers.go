package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/minhtan/hostpanel/pkg/client"
	"github.com/minhtan/hostpanel/pkg/psdk"
)

// newClient builds an API client from the config in the command context.
// When the session can no longer be refreshed the SDK fires the invalidation
// hook; the CLI equivalent of the console's redirect-to-login is a hint on
// stderr.
func newClient(cmd *cobra.Command) (*client.Client, error) {
	cfg, err := GetConfig(cmd)
	if err != nil {
		return nil, err
	}

	sdk, err := psdk.NewSdkFromConfig(cfg, psdk.WithSessionInvalidated(func() {
		fmt.Fprintln(os.Stderr, "session is no longer valid; run 'panelctl auth login'")
	}))
	if err != nil {
		return nil, err
	}

	return client.New(sdk), nil
}

// resourceFile backs the -f flag shared by the create/update subcommands;
// only one of them runs per invocation.
var resourceFile string

func addFileFlag(cmds ...*cobra.Command) {
	for _, c := range cmds {
		c.Flags().StringVarP(&resourceFile, "file", "f", "-", "JSON input file ('-' for stdin)")
	}
}

// readInto decodes JSON from a file path, or from stdin when path is "-".
func readInto(path string, v any) error {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to render output: %v\n", err)
		return
	}
	fmt.Println(string(data))
}
