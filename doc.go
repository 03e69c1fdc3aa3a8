/*
Package mipmap generates and verifies the Android launcher icons of an application.

For every screen density bucket (mdpi, hdpi, xhdpi, xxhdpi and xxxhdpi) two
lossy WebP icons are written: ic_launcher.webp, a square icon, and
ic_launcher_round.webp, the same icon cut to a circle. The icons are
resampled from a source image or, when no source image can be read,
drawn as a clock placeholder.

The package provides two command line tools, mipmap-gen and mipmap-verify.
In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"github.com/registrohoras/mipmap"
	)

	func main() {
		g := mipmap.NewGenerator(mipmap.DefaultQuality)
		if _, err := g.Generate("logo.png", "app/src/main/res"); err != nil {
			fmt.Printf("Error generating the icons: %s", err.Error())
		}

		rep := mipmap.NewVerifier(false).Verify("app/src/main/res")
		fmt.Println(rep.Passed())
	}
*/
package mipmap
