// Package branding centralizes user-facing product naming.
package branding

// AppName is the public product name shown in logs and tool surfaces.
const AppName = "Storefront"
