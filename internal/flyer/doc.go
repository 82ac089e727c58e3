// Package flyer renders the printable park cleanup recruitment flyers.
//
// A Spec carries the text and QR targets of one flyer. The Renderer draws it
// onto a raster page at a fixed physical size, and the Generator writes the
// result as a PNG plus a single-page PDF of the same physical size.
package flyer
