// Package timezone keeps the hotel's local timezone. Day boundaries used by the dashboard,
// arrivals, departures and task due dates are computed here so that "today" means the
// hotel's today and not the server's.
//
// The zone starts from APP_TIMEZONE (an IANA name such as "America/New_York") and follows
// the timezone saved in the hotel settings afterwards.
package timezone
