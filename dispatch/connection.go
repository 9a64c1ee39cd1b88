// Copyright Envoy AI Gateway Authors
// SPDX-License-Identifier: Apache-2.0
// The full text of the Apache license is available in the LICENSE file at
// the root of the repo.

// Package dispatch routes generateContent calls to one of the two published
// deployments of the Gemini model family. A Connection presents a single
// Request entry point; which deployment a call targets is derived per call
// from the credential kind of the bound transport client, or pinned by an
// explicit platform override at construction.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/envoyproxy/gemini-dispatch/internal/version"
	"github.com/envoyproxy/gemini-dispatch/translator"
	"github.com/envoyproxy/gemini-dispatch/transport"
)

var tracer = otel.Tracer("github.com/envoyproxy/gemini-dispatch/dispatch")

// connectionRole names this connection in diagnostic headers.
const connectionRole = "generate-content-connection"

// baselineClientHeader is used when no version information is available;
// header construction must never fail a call.
const baselineClientHeader = version.LibraryName + "/dev"

// Config fixes the deployment facts of a connection. Each field defaults
// independently when left empty. The configuration is immutable for the
// lifetime of the connection; per-call variation comes only through call
// parameters.
type Config struct {
	// Model is the model identifier, e.g. "gemini-pro". Its prefix
	// determines the model family and thereby the generate method.
	Model string
	// Platform pins the target deployment. Empty derives the platform from
	// the transport client's credential kind on every call.
	Platform Platform
	// Endpoint is the enterprise endpoint host. Defaults to the regional
	// endpoint of Location.
	Endpoint string
	// Location is the enterprise region. Defaults to us-central1.
	Location string
	// APIVersion defaults to v1.
	APIVersion string
	// Streaming selects streamed response handling for every call on this
	// connection. It is not overridable per call.
	Streaming bool
	// Formatter converts generic input to wire contents. Defaults to
	// translator.TextFormatter.
	Formatter translator.ContentFormatter
}

func (c Config) withDefaults() Config {
	if c.Location == "" {
		c.Location = defaultLocation
	}
	if c.APIVersion == "" {
		c.APIVersion = defaultAPIVersion
	}
	if c.Endpoint == "" {
		c.Endpoint = defaultEndpoint(c.Location)
	}
	if c.Formatter == nil {
		c.Formatter = translator.TextFormatter{}
	}
	return c
}

// CallOptions carries per-call options. Cancellation propagates through the
// request context; Headers are added to the diagnostic headers of the call.
type CallOptions struct {
	Headers http.Header
}

// Connection dispatches generateContent calls for one model. Configuration
// is read-only after construction, so a Connection is safe for concurrent
// use as long as its transport client is.
type Connection struct {
	cfg    Config
	client transport.Client
	caller transport.Caller
	logger *slog.Logger
}

// NewConnection builds a connection over the given transport client. A nil
// caller performs single attempts without retry; a nil logger discards logs.
func NewConnection(cfg Config, client transport.Client, caller transport.Caller, logger *slog.Logger) *Connection {
	if caller == nil {
		caller = transport.OnceCaller{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Connection{
		cfg:    cfg.withDefaults(),
		client: client,
		caller: caller,
		logger: logger.With("component", connectionRole),
	}
}

// Model returns the configured model identifier.
func (c *Connection) Model() string { return c.cfg.Model }

// Endpoint returns the configured enterprise endpoint host.
func (c *Connection) Endpoint() string { return c.cfg.Endpoint }

// Location returns the configured enterprise region.
func (c *Connection) Location() string { return c.cfg.Location }

// APIVersion returns the configured API version.
func (c *Connection) APIVersion() string { return c.cfg.APIVersion }

// Platform returns the configured platform override; empty means the
// platform is derived from the credential kind per call.
func (c *Connection) Platform() Platform { return c.cfg.Platform }

// Streaming reports whether responses are handled streamed on this
// connection.
func (c *Connection) Streaming() bool { return c.cfg.Streaming }

// Request formats the payload, performs exactly one transport call wrapped
// in the caller's retry and cancellation policy, and returns the raw
// provider response unmodified. Configuration errors (unknown model family)
// and enterprise project-resolution failures surface before or instead of
// the network attempt; transport errors propagate as-is with no translation.
func (c *Connection) Request(ctx context.Context, input translator.Input, params *translator.GenerationParameters, opts *CallOptions) (*http.Response, error) {
	body, err := translator.FormatRequest(c.cfg.Formatter, input, params)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request body: %w", err)
	}

	platform := ResolvePlatform(c.client.Kind(), c.cfg.Platform)
	url, err := c.buildURL(ctx, platform)
	if err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "gemini.generate_content",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("gen_ai.system", "gcp.gemini"),
			attribute.String("gen_ai.request.model", c.cfg.Model),
			attribute.String("gemini.platform", string(platform)),
		))
	defer span.End()

	c.logger.Debug("dispatching generate content call",
		slog.String("platform", string(platform)),
		slog.String("model", c.cfg.Model),
		slog.Bool("streaming", c.cfg.Streaming))

	resp, err := c.caller.Call(ctx, func(ctx context.Context) (*http.Response, error) {
		return c.client.Do(ctx, &transport.Request{
			URL:    url,
			Method: http.MethodPost,
			Header: c.requestHeaders(opts),
			Body:   raw,
			Stream: c.cfg.Streaming,
		})
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return resp, nil
}

// requestHeaders builds the diagnostic headers for one call.
func (c *Connection) requestHeaders(opts *CallOptions) http.Header {
	header := http.Header{}
	header.Set("Content-Type", "application/json")
	client := clientHeader()
	header.Set("User-Agent", client)
	header.Set("X-Goog-Api-Client", client)
	header.Set("X-Request-Id", uuid.NewString())
	if opts != nil {
		for key, values := range opts.Headers {
			for _, value := range values {
				header.Add(key, value)
			}
		}
	}
	return header
}

// clientHeader composes the User-Agent style identification string. It falls
// back to a baseline string rather than ever failing the call.
func clientHeader() string {
	name, ver := version.Library()
	if name == "" || ver == "" {
		return baselineClientHeader
	}
	return name + "/" + ver + " " + connectionRole
}
