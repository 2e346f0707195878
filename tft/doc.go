// Package tft holds the setup of an SPI connected TFT panel: which
// controller drives it, its resolution, the pins its signals are wired to,
// the font tables to link in and the named RGB565 colors used to draw on it.
//
// A setup is a plain Config value. It is built once, either from Default or
// from a User_Setup.h style header with ParseHeader, and then handed to the
// display driver. Nothing in this package mutates a Config after it is
// built.
package tft
