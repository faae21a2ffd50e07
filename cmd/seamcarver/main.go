package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/esimov/seamcarver"
	"github.com/esimov/seamcarver/utils"
)

const helpBanner = `
┌─┐┌─┐┌─┐┌┬┐┌─┐┌─┐┬─┐┬  ┬┌─┐┬─┐
└─┐├┤ ├─┤│││  ├─┤├┬┘└┐┌┘├┤ ├┬┘
└─┘└─┘┴ ┴┴ ┴└─┘┴ ┴┴└─ └┘ └─┘┴└─

Content aware image resize by seam carving.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

// rectList collects the repeatable x,y,w,h rectangle flags.
type rectList []image.Rectangle

func (r *rectList) String() string {
	parts := make([]string, len(*r))
	for i, rect := range *r {
		parts[i] = fmt.Sprintf("%d,%d,%d,%d", rect.Min.X, rect.Min.Y, rect.Dx(), rect.Dy())
	}
	return strings.Join(parts, " ")
}

func (r *rectList) Set(s string) error {
	rect, err := utils.ParseRect(s)
	if err != nil {
		return err
	}
	*r = append(*r, rect)
	return nil
}

var (
	// Flags
	source      = flag.String("in", pipeName, "Source")
	destination = flag.String("out", pipeName, "Destination")
	newWidth    = flag.Int("width", 0, "New width")
	newHeight   = flag.Int("height", 0, "New height")
	percentage  = flag.Bool("perc", false, "Reduce image by percentage")
	square      = flag.Bool("square", false, "Reduce image to square dimensions")
	direction   = flag.String("dir", "", "Seam direction used with -seams: 'v' (vertical) or 'h' (horizontal)")
	numSeams    = flag.Int("seams", 0, "Number of seams to remove")
	maskPath    = flag.String("mask", "", "Mask file path for retaining area")
	rMaskPath   = flag.String("rmask", "", "Mask file path for removing area")
	debug       = flag.Bool("debug", false, "Show the removal and protection masks on the output")
	compose     = flag.String("compose", "src_over", "Composition operation of the debug overlay (copy, src_over, dst_over, src_in, dst_in, src_out, dst_out, src_atop, dst_atop, xor)")
	blendMode   = flag.String("blend", "", "Blend mode of the debug overlay (darken, lighten, multiply, screen, overlay)")
	frames      = flag.String("frames", "", "Directory where a frame is saved for every removed seam")
	seamColor   = flag.String("color", "#ff0000", "Seam color used by the frames")
	faceDetect  = flag.Bool("face", false, "Use face detection")
	faceAngle   = flag.Float64("angle", 0.0, "Face rotation angle")
	cascade     = flag.String("cc", "", "Cascade classifier")
	workers     = flag.Int("conc", runtime.NumCPU(), "Number of files to process concurrently")

	removalRects    rectList
	protectionRects rectList
)

func main() {
	log.SetFlags(0)

	flag.Var(&removalRects, "rm", "Removal region as x,y,w,h (repeatable)")
	flag.Var(&protectionRects, "protect", "Protected region as x,y,w,h (repeatable)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	proc := &seamcarver.Processor{
		NewWidth:        *newWidth,
		NewHeight:       *newHeight,
		Percentage:      *percentage,
		Square:          *square,
		Debug:           *debug,
		Compose:         *compose,
		Blend:           *blendMode,
		FaceDetect:      *faceDetect,
		FaceAngle:       *faceAngle,
		Classifier:      *cascade,
		MaskPath:        *maskPath,
		RMaskPath:       *rMaskPath,
		RemovalRects:    removalRects,
		ProtectionRects: protectionRects,
	}

	switch *direction {
	case "":
		if *numSeams > 0 {
			log.Fatal(utils.DecorateText("Please provide the seam direction (-dir h|v) together with -seams", utils.ErrorMessage))
		}
	case "v":
		proc.VerticalSeams = *numSeams
	case "h":
		proc.HorizontalSeams = *numSeams
	default:
		log.Fatal(utils.DecorateText(fmt.Sprintf("unknown direction: %s", *direction), utils.ErrorMessage))
	}

	if *numSeams < 0 {
		log.Fatal(utils.DecorateText("The number of seams should be positive", utils.ErrorMessage))
	}
	if *faceDetect && len(*cascade) == 0 {
		log.Fatal(utils.DecorateText("Please specify a face classifier in case you are using the -face flag!", utils.ErrorMessage))
	}

	if *newWidth == 0 && *newHeight == 0 && *numSeams == 0 && !*square {
		flag.Usage()
		log.Fatal(utils.DecorateText("\nPlease provide a width, height, percentage or seam count for image rescaling!", utils.ErrorMessage))
	}

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ SEAMCARVER", utils.StatusMessage),
		utils.DecorateText("⇢ resizing image (be patient, it may take a while)...", utils.DefaultMessage),
	)
	spinner := utils.NewSpinner(spinnerText, time.Millisecond*80, true)

	observer, err := seamObserver(spinner)
	if err != nil {
		log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}
	proc.OnSeam = observer

	op := &seamcarver.Ops{
		Src:      *source,
		Dst:      *destination,
		PipeName: pipeName,
		Workers:  *workers,
		Spinner:  spinner,
	}
	if err := proc.Execute(op); err != nil {
		log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}
}

// seamObserver reports the number of removed seams on the spinner and,
// when the frames flag is set, saves every seam drawn over the image it was found on.
func seamObserver(spinner *utils.Spinner) (seamcarver.SeamObserver, error) {
	col, err := utils.HexToRGBA(*seamColor)
	if err != nil {
		return nil, err
	}
	if *frames != "" {
		if err := os.MkdirAll(*frames, 0755); err != nil {
			return nil, fmt.Errorf("unable to create the frames directory: %v", err)
		}
	}

	var count atomic.Int64
	return func(img *image.NRGBA, seam seamcarver.Seam, dir seamcarver.Direction) {
		n := count.Add(1)
		spinner.Progress(fmt.Sprintf("%d %s seams", n, dir))

		if *frames == "" {
			return
		}
		frame := seamcarver.DrawSeam(img, seam, dir, col)
		f, err := os.Create(filepath.Join(*frames, fmt.Sprintf("seam_%05d.png", n)))
		if err != nil {
			log.Printf("could not create the frame file: %v", err)
			return
		}
		defer f.Close()

		if err := png.Encode(f, frame); err != nil {
			log.Printf("could not encode the frame: %v", err)
		}
	}, nil
}
