// Package params declares the built-in device parameter catalog: the value
// types, their codecs (defaults, domains, text encoding), and the dense ID
// enumeration that indexes the handler table. NewRegistry builds and checks
// the table once at startup.
package params
