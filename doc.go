/*
Package seamcarver is a content aware image resize library, which shrinks the source image
both vertically and horizontally by repeatedly removing the connected path of pixels
(the seam) with the lowest importance.

The importance of each pixel is the gradient magnitude of the image luminance.
Regions of the image can be marked for removal or for protection, in which case
their energy is replaced with a strongly negative, respectively strongly positive value,
steering the seams through or around them.

The package provides a command line interface, supporting various flags for different types
of rescaling operations. To check the supported commands type:

	$ seamcarver --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	c := seamcarver.NewCarver(img)
	c.SetProtectionRegion(image.Rect(40, 20, 120, 100))
	c.CarveVertical(50)
	c.CarveHorizontal(20)

	res := c.Image()
*/
package seamcarver
