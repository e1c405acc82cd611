// Package handlekit derives plausible account handles and email addresses
// from people's full names, for IT provisioning checks and authorized
// account reconnaissance.
//
// The core pipeline lives in the leaf packages: pkg/nameparse splits and
// normalizes names, pkg/handle renders username patterns and applies profile
// filtering, sanitization, suffix expansion and bounding. This package
// composes them into a batch Runner that processes many names at once.
//
// Key Features:
//
//   - Deterministic output: same input and config always produce the same
//     ordered result list
//   - Per-name failure isolation: invalid names are logged and skipped, the
//     rest of the batch continues
//   - Optional bounded fan-out with order reassembly
//   - Run-scoped logging via context run IDs
//
// Basic Usage:
//
//	runner, err := handlekit.NewRunner(handle.Config{
//		Profile:   handle.ProfileCommon,
//		FoldASCII: true,
//	},
//		handlekit.WithMode(handlekit.ModeBoth),
//		handlekit.WithDomains("example.com"),
//	)
//	if err != nil {
//		// Config problem, nothing was processed
//	}
//
//	results, err := runner.Run(ctx, []string{"John Doe", "Ana María López"})
//	for _, res := range results {
//		fmt.Println(res.Kind, res.Value)
//	}
//
// Run IDs:
//
// Every Run attaches a fresh identifier to its context. A logger built with
// pkg/logger can surface it on each record:
//
//	log := logger.New(
//		logger.WithContextValue("run_id", handlekit.RunIDKey),
//	)
//	runner, _ := handlekit.NewRunner(cfg, handlekit.WithLogger(log))
//
// The package follows these principles:
//   - Explicit configuration over hidden defaults
//   - Pure core, side effects only at the edges
//   - Stable ordering over raw throughput
package handlekit
