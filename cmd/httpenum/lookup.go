package main

import (
	"fmt"
	"http-enum/application/http/semantic/contenttype"
	"http-enum/application/http/semantic/method"
	"http-enum/application/http/semantic/status"
	"http-enum/application/util/uri/scheme"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type statusResult struct {
	Code   status.Code `json:"code"`
	Reason string      `json:"reason"`
	Class  string      `json:"class"`
}

func statusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status <code>",
		Short: "Show the reason phrase and class of a status code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseUint(args[0], 10, 16)
			if err != nil {
				return errors.Wrapf(err, "parsing status code %q", args[0])
			}

			code, ok := status.FromCode(uint(n))
			a.logger.Debug("status lookup", "input", args[0], "found", ok)
			if !ok {
				return errors.Wrapf(status.ErrUnknown, "%d", n)
			}

			res := statusResult{Code: code, Reason: code.ReasonPhrase(), Class: code.Class().String()}
			return a.render(res, fmt.Sprintf("%s (%s)", code, res.Class))
		},
	}
}

type methodResult struct {
	Method     method.Method `json:"method"`
	Safe       bool          `json:"safe"`
	Idempotent bool          `json:"idempotent"`
}

func methodCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "method <token>",
		Short: "Show the semantics of a request method (case-sensitive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, ok := method.Parse(args[0])
			a.logger.Debug("method lookup", "input", args[0], "found", ok)
			if !ok {
				return errors.Wrapf(method.ErrUnknown, "%q", args[0])
			}

			res := methodResult{Method: m, Safe: m.IsSafe(), Idempotent: m.IsIdempotent()}
			return a.render(res, fmt.Sprintf("%s safe=%t idempotent=%t", m, res.Safe, res.Idempotent))
		},
	}
}

type schemeResult struct {
	Scheme       scheme.Scheme `json:"scheme"`
	DefaultPort  *uint16       `json:"default_port"`
	Secure       bool          `json:"secure"`
	RequiresHost bool          `json:"requires_host"`
}

func schemeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scheme <name>",
		Short: "Show the default port and security of a URI scheme (case-sensitive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ok := scheme.Parse(args[0])
			a.logger.Debug("scheme lookup", "input", args[0], "found", ok)
			if !ok {
				return errors.Wrapf(scheme.ErrUnknown, "%q", args[0])
			}

			res := schemeResult{Scheme: s, Secure: s.IsSecure(), RequiresHost: s.RequiresHost()}
			port := "-"
			if p, ok := s.DefaultPort(); ok {
				res.DefaultPort = &p
				port = strconv.FormatUint(uint64(p), 10)
			}

			return a.render(res, fmt.Sprintf(
				"%s port=%s secure=%t requires-host=%t", s, port, res.Secure, res.RequiresHost,
			))
		},
	}
}

type contentTypeResult struct {
	ContentType contenttype.ContentType `json:"content_type"`
	TextBased   bool                    `json:"text_based"`
	JSON        bool                    `json:"json"`
	Media       bool                    `json:"media"`
	Font        bool                    `json:"font"`
	Form        bool                    `json:"form"`
	Binary      bool                    `json:"binary"`
	Extensions  []string                `json:"extensions"`
}

func contentTypeCmd(a *app) *cobra.Command {
	var header, ext string

	cmd := &cobra.Command{
		Use:   "content-type [media-type]",
		Short: "Classify a content type given as a canonical value, a header value or a file extension",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				ct    contenttype.ContentType
				ok    bool
				input string
			)

			switch {
			case len(args) == 1:
				input = args[0]
				ct, ok = contenttype.Parse(input)
			case cmd.Flags().Changed("header"):
				input = header
				ct, ok = contenttype.FromHeader(input)
			case cmd.Flags().Changed("ext"):
				input = ext
				ct, ok = contenttype.FromExtension(input)
			default:
				return errors.New("one of [media-type], --header or --ext is required")
			}

			a.logger.Debug("content type lookup", "input", input, "found", ok)
			if !ok {
				return errors.Wrapf(contenttype.ErrUnknown, "%q", input)
			}

			res := contentTypeResult{
				ContentType: ct,
				TextBased:   ct.IsTextBased(),
				JSON:        ct.IsJSON(),
				Media:       ct.IsMedia(),
				Font:        ct.IsFont(),
				Form:        ct.IsForm(),
				Binary:      ct.IsBinary(),
				Extensions:  contenttype.Extensions(ct),
			}

			return a.render(res, fmt.Sprintf(
				"%s text-based=%t json=%t media=%t font=%t form=%t binary=%t extensions=%s",
				ct, res.TextBased, res.JSON, res.Media, res.Font, res.Form, res.Binary,
				strings.Join(res.Extensions, ","),
			))
		},
	}

	cmd.Flags().StringVar(&header, "header", "", "Raw Content-Type header value")
	cmd.Flags().StringVar(&ext, "ext", "", "File extension without the leading dot")
	cmd.MarkFlagsMutuallyExclusive("header", "ext")

	return cmd
}
