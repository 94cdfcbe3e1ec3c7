// Package cl wraps the CodaLab command-line client.
//
// Every operation shells out to the cl binary so that server selection,
// authentication and worksheet state stay exactly what the user's cl
// installation does. Bundle specs are passed through verbatim; alias and
// history-range expansion happens before specs reach this package.
package cl
