// Package status defines the closed set of order status codes and the
// registry that carries their presentation and transition metadata.
//
// Codes are identifiers and never change. Display names, icons, colors, the
// active flag, whether entering a status requires a driver, and which roles
// may set it all come from a YAML catalog. The default catalog is embedded;
// deployments may supply their own.
//
// "Received at branch" and "returned to branch" are one status:
// ReturnedToBranch.
package status
