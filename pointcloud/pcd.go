package pointcloud

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// pcdCommentChar starts a comment anywhere in a pcd line.
const pcdCommentChar = "#"

// pcdHeaderFields are the header lines of a pcd v0.7 file, in the order they
// must appear.
var pcdHeaderFields = []string{"VERSION", "FIELDS", "SIZE", "TYPE", "COUNT", "WIDTH", "HEIGHT", "VIEWPOINT", "POINTS", "DATA"}

type pcdHeader struct {
	width     uint64
	height    uint64
	viewpoint [7]float64
	points    uint64
}

// ToPCD writes the cloud to the writer as an ascii pcd v0.7 file with
// x y z fields.
func ToPCD(cloud PointCloud, out io.Writer) error {
	_, err := fmt.Fprintf(out, "VERSION .7\n"+
		"FIELDS x y z\n"+
		"SIZE 4 4 4\n"+
		"TYPE F F F\n"+
		"COUNT 1 1 1\n"+
		"WIDTH %d\n"+
		"HEIGHT %d\n"+
		"VIEWPOINT 0 0 0 1 0 0 0\n"+
		"POINTS %d\n"+
		"DATA ascii\n",
		cloud.Size(),
		1,
		cloud.Size())
	if err != nil {
		return err
	}
	var werr error
	cloud.Iterate(0, 0, func(_ int, p r3.Vector) bool {
		_, werr = fmt.Fprintf(out, "%f %f %f\n", p.X, p.Y, p.Z)
		return werr == nil
	})
	return werr
}

// WriteToPCDFile writes the cloud to the given path as an ascii pcd file.
func WriteToPCDFile(path string, cloud PointCloud) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Combine(err, f.Close())
	}()
	return ToPCD(cloud, f)
}

// ReadPCD reads an ascii pcd v0.7 file with x y z fields into a PointCloud.
func ReadPCD(inRaw io.Reader, logger golog.Logger) (PointCloud, error) {
	header := pcdHeader{}
	in := bufio.NewReader(inRaw)
	headerLineCount := 0
	for headerLineCount < len(pcdHeaderFields) {
		line, err := in.ReadString('\n')
		if err != nil {
			return nil, errors.Wrapf(err, "reading pcd header line %d", headerLineCount)
		}
		line, _, _ = strings.Cut(line, pcdCommentChar)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := parsePCDHeaderLine(line, headerLineCount, &header); err != nil {
			return nil, err
		}
		headerLineCount++
	}
	pc, err := readPCDAscii(in, header)
	if err != nil {
		return nil, err
	}
	logger.Debugf("read %d points from pcd", pc.Size())
	return pc, nil
}

// ReadPCDFromFile reads a PointCloud from an ascii pcd file at the given path.
func ReadPCDFromFile(path string, logger golog.Logger) (pc PointCloud, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = multierr.Combine(err, f.Close())
	}()
	return ReadPCD(f, logger)
}

func parsePCDHeaderLine(line string, index int, header *pcdHeader) error {
	name := pcdHeaderFields[index]
	field, value, _ := strings.Cut(line, " ")
	tokens := strings.Fields(value)
	if field != name {
		return newPCDHeaderError(line, fmt.Sprintf("expected a %s line", name))
	}

	var err error
	switch name {
	case "VERSION":
		if value != ".7" && value != "0.7" {
			return newPCDHeaderError(line, "unsupported pcd version")
		}
	case "FIELDS":
		if value != "x y z" {
			return newPCDHeaderError(line, "only x y z fields are supported")
		}
	case "SIZE", "TYPE", "COUNT":
		if len(tokens) != 3 {
			return newPCDHeaderError(line, "expected one entry per field")
		}
	case "WIDTH":
		if header.width, err = strconv.ParseUint(value, 10, 64); err != nil {
			return newPCDHeaderError(line, err.Error())
		}
	case "HEIGHT":
		if header.height, err = strconv.ParseUint(value, 10, 64); err != nil {
			return newPCDHeaderError(line, err.Error())
		}
	case "VIEWPOINT":
		if len(tokens) != 7 {
			return newPCDHeaderError(line, fmt.Sprintf("expected 7 values, got %d", len(tokens)))
		}
		for i, token := range tokens {
			if header.viewpoint[i], err = strconv.ParseFloat(token, 64); err != nil {
				return newPCDHeaderError(line, err.Error())
			}
		}
	case "POINTS":
		var points uint64
		if points, err = strconv.ParseUint(value, 10, 64); err != nil {
			return newPCDHeaderError(line, err.Error())
		}
		if points != header.width*header.height {
			return newPCDHeaderError(line, fmt.Sprintf("POINTS %d does not match WIDTH*HEIGHT %d", points, header.width*header.height))
		}
		header.points = points
	case "DATA":
		if value != "ascii" {
			return newPCDHeaderError(line, "only ascii data is supported")
		}
	}
	return nil
}

func readPCDAscii(in *bufio.Reader, header pcdHeader) (PointCloud, error) {
	pc := NewWithPrealloc(int(header.points))
	for i := 0; i < int(header.points); i++ {
		line, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		line = strings.TrimSpace(line)
		tokens := strings.Fields(line)
		if len(tokens) != 3 {
			return nil, newPCDPointError(i, line)
		}
		var point [3]float64
		for j, token := range tokens {
			if point[j], err = strconv.ParseFloat(token, 64); err != nil {
				return nil, newPCDPointError(i, line)
			}
		}
		pc.Append(r3.Vector{X: point[0], Y: point[1], Z: point[2]})
	}
	return pc, nil
}
