package main

import (
	"fmt"
	"http-enum/application/http/semantic/contenttype"
	"http-enum/application/http/semantic/method"
	"http-enum/application/http/semantic/status"
	"http-enum/application/util/uri/scheme"
	sliceutil "http-enum/lib/slice"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var errUnknownCatalog = errors.New("unknown catalog")

type catalog struct {
	all    func() []string
	groups map[string]func() []string
}

func stringsOf[T fmt.Stringer](members func() []T) func() []string {
	return func() []string {
		return sliceutil.Map(members(), func(v T) string { return v.String() })
	}
}

var catalogs = map[string]catalog{
	"status": {
		all: stringsOf(status.All),
		groups: map[string]func() []string{
			"informational":          stringsOf(status.Informational),
			"success":                stringsOf(status.Success),
			"redirection":            stringsOf(status.Redirection),
			"client-error":           stringsOf(status.ClientError),
			"server-error":           stringsOf(status.ServerError),
			"client-or-server-error": stringsOf(status.ClientOrServerError),
		},
	},
	"method": {
		all: stringsOf(method.All),
		groups: map[string]func() []string{
			"safe":       stringsOf(method.Safe),
			"idempotent": stringsOf(method.Idempotent),
		},
	},
	"scheme": {
		all: stringsOf(scheme.All),
		groups: map[string]func() []string{
			"secure":        stringsOf(scheme.Secure),
			"requires-host": stringsOf(scheme.HostRequired),
		},
	},
	"content-type": {
		all: stringsOf(contenttype.All),
		groups: map[string]func() []string{
			"text-based": stringsOf(contenttype.TextBased),
			"json":       stringsOf(contenttype.JSONTypes),
			"image":      stringsOf(contenttype.Image),
			"audio":      stringsOf(contenttype.Audio),
			"video":      stringsOf(contenttype.Video),
			"media":      stringsOf(contenttype.Media),
			"font":       stringsOf(contenttype.Font),
			"form":       stringsOf(contenttype.Form),
			"binary":     stringsOf(contenttype.Binary),
		},
	},
}

func listCmd(a *app) *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:       "list <catalog>",
		Short:     "List the members of a catalog, optionally narrowed to one group",
		Long:      "Catalogs: " + strings.Join(sortedKeys(catalogs), ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: sortedKeys(catalogs),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ok := catalogs[args[0]]
			if !ok {
				return errors.Wrapf(errUnknownCatalog, "%q (want one of %s)",
					args[0], strings.Join(sortedKeys(catalogs), ", "))
			}

			members := c.all
			if group != "" {
				members, ok = c.groups[group]
				if !ok {
					return errors.Errorf("catalog %s has no group %q (want one of %s)",
						args[0], group, strings.Join(sortedKeys(c.groups), ", "))
				}
			}

			out := members()
			a.logger.Debug("list", "catalog", args[0], "group", group, "count", len(out))

			return a.render(out, strings.Join(out, "\n"))
		},
	}

	cmd.Flags().StringVar(&group, "group", "", "Restrict the listing to one classification group")

	return cmd
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
