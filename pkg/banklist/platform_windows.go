//go:build windows

package banklist

const platformDir = "Windows"
