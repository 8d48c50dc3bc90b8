// Package main provides the entry point for the pwmeter CLI.
//
// pwmeter scores password strength, explains how to improve a password,
// and generates memorable passphrases.
//
// Usage:
//
//	pwmeter analyze
//	pwmeter analyze --list passwords.txt
//	pwmeter generate -n 5 --analyze
//	pwmeter serve
//
// See --help for all available options.
package main

// main is the entry point for pwmeter.
func main() {
	Execute()
}
