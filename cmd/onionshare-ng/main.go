// OnionShare NG v0.3
// Copyright (c) OnionShare NG developers
// Released under GPL-3.0-only
//
// OnionShare NG is the utility core of an anonymous file sharing tool:
//   - Wordlist-based password generation with a secure random source
//   - zxcvbn strength scoring and Argon2id hashing for saved passwords
//   - Recursive directory size accounting and zip staging of shares
//   - Free loopback port discovery for the local web server
//   - Per-platform resource and Tor binary path resolution
//   - A timestamped debug logger gated behind verbose mode

package main

import "OnionShare-NG/internal/cli"

// version is the application version.
// Format: "vMAJOR.MINOR" (e.g., "v0.3")
const version = "v0.3"

func main() {
	cli.Execute(version)
}
