// Package export turns a settlement or character card into a PNG and hands
// it to a Sink.
//
// Cards are laid out at one logical pixel per unit and rasterized at Scale
// (2 by default) on a #f5f5f5 background. Remote images are fetched over
// HTTP from any origin and scaled into place; an image that cannot be
// fetched or decoded leaves a neutral placeholder instead of failing the
// export.
//
// Sinks:
//
//	FileSink  writes next to a temp file and renames it into place
//	S3Sink    uploads to an S3-compatible bucket (MinIO works)
//
// A temp file is removed on every failure path, so an interrupted export
// never leaves partial files behind.
package export
