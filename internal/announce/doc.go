// Package announce registers the decode service on the local network
// via mDNS, so scan tooling on other hosts can find it without
// configuration. Announcement is optional and failures are non-fatal.
package announce
