// Package ports declares the boundary interfaces between the application core
// and its adapters. Inbound adapters call the use case handlers directly;
// outbound dependencies (code allocation, label rendering) are expressed here
// and implemented under internal/adapters/out.
package ports
