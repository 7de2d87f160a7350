// Package logx holds the logger used across the module.
//
// The Logger interface is a subset of apex/log's log.Interface, so log.Log,
// *log.Logger and *log.Entry can all be installed directly via SetDefault.
// The default logger is log.Log.
package logx
