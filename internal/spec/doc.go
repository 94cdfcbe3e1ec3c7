// Package spec handles bundle specs: the string tokens that identify
// bundles on the command line.
//
// A spec is either a uuid (0x + 32 hex digits, prefixes allowed), a name,
// a name with history suffix (name^2 is "two versions back"), or any of
// those with an explicit client prefix (alias::spec). History ranges like
// name^1-3 expand to one spec per index before being handed to cl.
package spec
