/*
Package beacon resolves typed configuration and feature-flag values by key
against a runtime context, backed by a remote, periodically refreshed
source.

beacon is designed to be embedded within services, not run standalone. A
Repository mirrors the remote payload into an immutable snapshot and keeps
it fresh in the background; a Resolver evaluates per-configuration
conditions against an aggregated context to pick the effective value.
Readers are never blocked by a refresh: the snapshot is republished with a
single atomic pointer swap.

# Basic Usage

Construct the repository with a loader and parser, then resolve through
typed accessors:

	repo, err := beacon.NewRepository(ctx,
	    beacon.NewFileLoader("flags.json"),
	    beacon.NewJSONParser(),
	    beacon.WithRefreshInterval(beacon.DefaultRefreshInterval),
	)
	if err != nil {
	    return err // initial load failure is fatal
	}
	if err := repo.Start(ctx); err != nil {
	    return err
	}

	registry := beacon.NewRegistry()
	registry.Register(beacon.NewProviderFunc("region", currentRegion))

	resolver := beacon.NewResolver(repo, registry)

	var expressToggle = beacon.NewAccessor[bool]("express.feature.toggle")

	on, ok, err := expressToggle.Resolve(ctx, resolver)

# Payload

The remote payload is an ordered list of configuration records, JSON by
default (YAML via NewYAMLParser):

	[
	  {
	    "alias": "express.feature.toggle",
	    "description": "Express checkout rollout",
	    "conditions": [
	      {"match": {"region": "EU"}, "value": true}
	    ],
	    "defaultValue": false
	  }
	]

Every condition value must have the same kind as the default value; the
parser rejects payloads that violate this, and a rejected refresh leaves
the previous snapshot in place.

# Refresh

The repository loads once, synchronously, at construction: a failure there
aborts construction. With a refresh interval configured, Start runs one
background goroutine that re-loads on a fixed cadence. A failed cycle is
logged via signals and retried only by the next tick; readers keep the
previous snapshot throughout. NewFileTrigger and Refresh support
change-driven cadences for file-backed sources.

Loaders for S3 (with KMS envelope decryption), Consul KV, and etcd live in
the s3, consul, and etcd subpackages.

# Context

Conditions match against a context mapping built fresh for every
resolution. Global providers are registered once on a Registry; per-call
providers are passed to Resolve. Among global providers the first
registered for a parameter wins; a per-call provider colliding with any
already-present parameter fails the call with
ErrDuplicateContextParameter.

# Observability

Repository and resolution lifecycle events are emitted as capitan signals
(see signals.go); hosts subscribe with capitan.Hook. A MetricsProvider
callback interface covers refresh timing and state transitions.
*/
package beacon
