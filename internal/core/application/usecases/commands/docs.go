// Package commands contains the use cases of delivery preparation.
// Each command is a constructor-guarded value handled by a dedicated handler.
package commands
