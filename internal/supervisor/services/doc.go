// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package services provides suture.Service wrappers for long-running components.

Each wrapper implements suture.Service:

	type Service interface {
	    Serve(ctx context.Context) error
	}

and fmt.Stringer so supervisor events name the service.

HTTPServerService wraps *http.Server. ListenAndServe runs in a goroutine;
context cancellation triggers Shutdown bounded by the configured timeout. A
bind failure is returned so suture restarts the server with backoff.

DatasetService loads the catalog and similarity matrix through a
DatasetLoader and hands the result to a DatasetInstaller (the recommend
service). Load failures are recorded with the installer rather than
returned, so the process stays up in degraded mode. With a retry interval
configured it keeps trying; once a dataset is installed it leaves the tree
with suture.ErrDoNotRestart.
*/
package services
