// Package lib provides a Go SDK for Tavor boxes: ephemeral remote sandboxes.
//
// The SDK creates boxes, waits for them to become ready, and guarantees they
// are released when they are no longer needed.
//
// # Quick Start
//
// Create a client (the API key is read from TAVOR_API_KEY when not set) and
// run some work on a managed box:
//
//	client, err := lib.New(lib.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	hostname, err := lib.WithSandbox(ctx, client, nil, func(ctx context.Context, box *lib.BoxHandle) (string, error) {
//	    b, err := box.Status(ctx)
//	    if err != nil {
//	        return "", err
//	    }
//	    return b.Hostname, nil
//	})
//
// The box is stopped when the work returns, fails, or the context is canceled.
//
// # Manual lifecycle
//
// Boxes can also be handled explicitly. The caller is then responsible for
// stopping them:
//
//	box, err := client.CreateBox(ctx, &lib.BoxConfig{CPU: lib.Int(2), MiBRAM: lib.Int(2048)})
//	if err != nil {
//	    return err
//	}
//	defer box.Stop(context.WithoutCancel(ctx))
//
//	if err := box.WaitUntilReady(ctx, nil); err != nil {
//	    return err
//	}
//
// A [BoxHandle] is only an ID plus the client configuration, every method asks
// the service for the current state. [Client.GetBox] returns a handle for an
// existing box without checking it exists.
//
// # Configuration
//
// Explicit [Config] values always win. Otherwise the environment is used:
//
//   - TAVOR_API_KEY: the API key (required).
//   - TAVOR_BASE_URL: the service address (default https://api.tavor.dev).
//   - TAVOR_BOX_TIMEOUT: the managed box lifetime in seconds (default 600). A
//     malformed value only fails [WithSandbox] calls that need it.
//
// # Error Handling
//
// All methods return errors that can be inspected with [errors.Is]:
//
//   - [ErrAuthentication]: missing API key, or rejected by the service (401/403).
//   - [ErrNotFound]: the box does not exist (404).
//   - [ErrNotValid]: the request was rejected as invalid (other 4xx).
//   - [ErrRemoteService]: the service failed (5xx).
//   - [ErrTransport]: no response was received (network, DNS, timeouts).
//   - [ErrReadinessTimeout]: the box was not ready in time.
//   - [ErrRemoteFailure]: the box reached a terminal status while waiting.
//
// Details are available with [errors.As] on [APIError], [TransportError],
// [ReadinessTimeoutError] and [RemoteFailureError].
//
// # Thread Safety
//
// A [Client] and its [BoxHandle]s are safe for concurrent use. They share the
// HTTP transport and hold no mutable state.
package lib
