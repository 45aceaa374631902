// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package supervisor provides process supervision using suture v4.

The tree organizes services into two layers:

	RootSupervisor ("reelmatch")
	├── DataSupervisor ("data-layer")
	│   └── DatasetService (download, decode, install; retries on failure)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A dataset that fails to load never takes the process down. DatasetService
records the failure with the recommend service, which keeps answering in
degraded mode, and either retries after the configured interval or stops
with suture.ErrDoNotRestart.

Supervisor events (start, failure, backoff) are logged through sutureslog
into the zerolog-backed slog handler from the logging package.

Usage in main.go:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewDatasetService(loader, svc, cfg, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)
*/
package supervisor
