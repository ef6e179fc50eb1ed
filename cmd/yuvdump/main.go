package main

import (
	"encoding/binary"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/kovidgoyal/itur"
	"github.com/kovidgoyal/itur/convert"
	"github.com/kovidgoyal/itur/frameio"
)

var _ = fmt.Print

func standardByName(name string) (itur.Standard, error) {
	switch name {
	case "601-525", "601_525", "525":
		return itur.BT601_525, nil
	case "601-625", "601_625", "625":
		return itur.BT601_625, nil
	case "709":
		return itur.BT709, nil
	case "2020":
		return itur.BT2020, nil
	}
	return itur.Standard{}, fmt.Errorf("unknown standard %q, use one of 601-525, 601-625, 709, 2020", name)
}

type planeStats struct {
	Min, Max uint16
	Mean     float64
}

func statsOf(samples []uint16) (ans planeStats) {
	if len(samples) == 0 {
		return
	}
	ans.Min = samples[0]
	var total uint64
	for _, s := range samples {
		ans.Min = min(ans.Min, s)
		ans.Max = max(ans.Max, s)
		total += uint64(s)
	}
	ans.Mean = float64(total) / float64(len(samples))
	return
}

// writePlane dumps samples as raw bytes, one byte per sample for 8 bit
// levels and little endian uint16 otherwise.
func writePlane(out *os.File, samples []uint16, bits int) error {
	if bits > 8 {
		return binary.Write(out, binary.LittleEndian, samples)
	}
	b := make([]byte, len(samples))
	for i, s := range samples {
		b[i] = uint8(s)
	}
	_, err := out.Write(b)
	return err
}

type frameInfo struct {
	Number          uint
	File            string
	DelayMS         int64
	Width, Height   int
	CWidth, CHeight int
	APL             float64
	Y, Cb, Cr       planeStats
}

type dumpInfo struct {
	Standard      string
	CodePoints    string
	Levels        string
	Subsampling   string
	Width, Height int
	LoopCount     uint
	Frames        []frameInfo
}

func main() {
	std_name := flag.String("std", "709", "encoding standard: 601-525, 601-625, 709 or 2020")
	bits := flag.Int("bits", 8, "code word size in bits, 8 to 16")
	full := flag.Bool("full", false, "full range instead of studio swing")
	sub_name := flag.String("sub", "420", "chroma subsampling: 444, 422 or 420")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: yuvdump [flags] input-file [output-prefix]")
		flag.PrintDefaults()
	}
	flag.Parse()

	var err error
	defer func() {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()
	args := flag.Args()
	if len(args) == 0 || len(args) > 2 {
		flag.Usage()
		os.Exit(1)
	}
	std, err := standardByName(*std_name)
	if err != nil {
		return
	}
	sub, err := convert.ParseSubsampling(*sub_name)
	if err != nil {
		return
	}
	levels := itur.Levels{Bits: *bits, Full: *full}

	seq, err := frameio.OpenAll(args[0])
	if err != nil {
		return
	}
	output_prefix := args[0]
	if len(args) == 2 {
		output_prefix = args[1]
	}
	seq.Coalesce()

	info := dumpInfo{
		Standard:    std.String(),
		CodePoints:  itur.Quantized(std, levels).CodePoints().String(),
		Levels:      levels.String(),
		Subsampling: sub.String(),
		Width:       seq.Width,
		Height:      seq.Height,
		LoopCount:   seq.LoopCount,
	}
	for _, f := range seq.Frames {
		var p *convert.Planes
		p, err = convert.ToPlanes(f.Image, convert.Standard(std), convert.Levels(levels), convert.Subsample(sub))
		if err != nil {
			return
		}
		var apl float64
		apl, err = convert.AveragePictureLevel(f.Image, std)
		if err != nil {
			return
		}
		output_file := fmt.Sprintf("%s-%05d.yuv", output_prefix, f.Number)
		var out *os.File
		out, err = os.OpenFile(output_file, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
		if err != nil {
			return
		}
		func() {
			defer out.Close()
			for _, plane := range [][]uint16{p.Y, p.Cb, p.Cr} {
				if err = writePlane(out, plane, levels.Bits); err != nil {
					return
				}
			}
		}()
		if err != nil {
			return
		}
		fi := frameInfo{
			Number: f.Number, File: output_file, DelayMS: f.Delay.Milliseconds(),
			Width: p.Width, Height: p.Height, CWidth: p.CWidth, CHeight: p.CHeight,
			APL: apl, Y: statsOf(p.Y), Cb: statsOf(p.Cb), Cr: statsOf(p.Cr),
		}
		fmt.Printf("%05d: Y %d-%d mean %.1f  Cb %d-%d mean %.1f  Cr %d-%d mean %.1f  APL %.4f\n",
			fi.Number, fi.Y.Min, fi.Y.Max, fi.Y.Mean, fi.Cb.Min, fi.Cb.Max, fi.Cb.Mean,
			fi.Cr.Min, fi.Cr.Max, fi.Cr.Mean, fi.APL)
		info.Frames = append(info.Frames, fi)
	}
	var b []byte
	b, err = json.MarshalIndent(info, "", "  ")
	if err != nil {
		return
	}
	output_file := fmt.Sprintf("%s-metadata.json", output_prefix)
	if err = os.WriteFile(output_file, b, 0o666); err != nil {
		return
	}
	fmt.Printf("%d frame(s) dumped to %s-*.yuv as %s %s %s\n",
		len(info.Frames), output_prefix, info.Standard, info.Levels, info.Subsampling)
}
