// Package slog provides log/slog decorators for marsnap services.
package slog
