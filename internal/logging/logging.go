// Package logging builds the process-wide zap logger.
package logging

import "go.uber.org/zap"

// New returns a JSON production logger, or a console development logger
// outside production.
func New(production bool) (*zap.Logger, error) {
	if production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
