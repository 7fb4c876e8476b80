package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hostspec/hostspec/pkg/backend"
	"github.com/hostspec/hostspec/pkg/providers"
	"github.com/hostspec/hostspec/pkg/resource"
)

// NewResourcesCommand creates the resources command, which lists the
// registered resource types and what each one can check.
func NewResourcesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resources",
		Short: "List registered resource types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listResources(cmd, rootOpts)
		},
	}
}

// resourceInfo is the JSON shape for one listed type.
type resourceInfo struct {
	Type    string   `json:"type"`
	Params  []string `json:"params,omitempty"`
	Members []string `json:"members,omitempty"`
}

func listResources(cmd *cobra.Command, opts *RootOptions) error {
	b, err := backend.Get(opts.Backend)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to select backend", err)
	}

	dir := resource.NewDirectory()
	if err := providers.RegisterAll(dir); err != nil {
		return WrapExitError(ExitCommandError, "failed to register resource types", err)
	}

	var infos []resourceInfo
	for _, typeName := range dir.TypeNames() {
		info := resourceInfo{Type: typeName}
		if h, err := dir.Resolve(typeName, b); err == nil {
			info.Params = h.Params()
			if lister, ok := h.(resource.MemberLister); ok {
				info.Members = lister.MemberNames()
			}
		}
		infos = append(infos, info)
	}

	if opts.Format == "json" {
		return RenderJSON(cmd.OutOrStdout(), infos)
	}

	w := cmd.OutOrStdout()
	for _, info := range infos {
		labelColor.Fprintf(w, "%s\n", info.Type)
		if len(info.Params) > 0 {
			fmt.Fprintf(w, "  params:  %s\n", strings.Join(info.Params, ", "))
		}
		if len(info.Members) > 0 {
			fmt.Fprintf(w, "  members: %s\n", strings.Join(info.Members, ", "))
		}
	}
	return nil
}
