// Package logger provides structured logging for seqkit using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers kept in a named registry. Sequence.Log resolves
// its logger through Get.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("orders")
//	log.Debug("element", logger.ElementFields(3, order))
package logger
