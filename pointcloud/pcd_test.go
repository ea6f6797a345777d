package pointcloud

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.viam.com/test"

	"github.com/perceptive-robotics/geometries/spatialmath"
)

const pcdTestHeader = `VERSION .7
FIELDS x y z
SIZE 4 4 4
TYPE F F F
COUNT 1 1 1
WIDTH 2
HEIGHT 1
VIEWPOINT 0 0 0 1 0 0 0
POINTS 2
DATA ascii
`

func TestPCDRoundTrip(t *testing.T) {
	logger := golog.NewTestLogger(t)
	pc := NewFromPoints([]r3.Vector{
		{X: 1.5, Y: -2.25, Z: 3.125},
		{X: 0, Y: 0.5, Z: -1.75},
	})

	var buf bytes.Buffer
	test.That(t, ToPCD(pc, &buf), test.ShouldBeNil)
	out := buf.String()
	test.That(t, out, test.ShouldContainSubstring, "VERSION .7")
	test.That(t, out, test.ShouldContainSubstring, "FIELDS x y z")
	test.That(t, out, test.ShouldContainSubstring, "WIDTH 2")
	test.That(t, out, test.ShouldContainSubstring, "POINTS 2")
	test.That(t, out, test.ShouldContainSubstring, "DATA ascii")

	back, err := ReadPCD(&buf, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, back.Size(), test.ShouldEqual, 2)
	test.That(t, back.At(0), test.ShouldResemble, r3.Vector{X: 1.5, Y: -2.25, Z: 3.125})
	test.That(t, back.At(1), test.ShouldResemble, r3.Vector{X: 0, Y: 0.5, Z: -1.75})
}

func TestPCDFileRoundTrip(t *testing.T) {
	logger := golog.NewTestLogger(t)
	pc := NewFromPoints([]r3.Vector{{X: 1.5, Y: -2.25, Z: 3.125}})

	path := filepath.Join(t.TempDir(), "cloud.pcd")
	test.That(t, WriteToPCDFile(path, pc), test.ShouldBeNil)

	back, err := ReadPCDFromFile(path, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, back.Size(), test.ShouldEqual, 1)
	test.That(t, back.At(0), test.ShouldResemble, r3.Vector{X: 1.5, Y: -2.25, Z: 3.125})
}

func TestPCDEmptyCloud(t *testing.T) {
	logger := golog.NewTestLogger(t)
	var buf bytes.Buffer
	test.That(t, ToPCD(New(), &buf), test.ShouldBeNil)

	back, err := ReadPCD(&buf, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, back.Size(), test.ShouldEqual, 0)
}

func TestReadPCDCommentsAndBlanks(t *testing.T) {
	logger := golog.NewTestLogger(t)
	in := "# produced by a lidar\n\n" + pcdTestHeader + "1.500000 -2.250000 3.125000\n0.000000 0.500000 -1.750000\n"

	pc, err := ReadPCD(strings.NewReader(in), logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, pc.Size(), test.ShouldEqual, 2)
	test.That(t, pc.At(0), test.ShouldResemble, r3.Vector{X: 1.5, Y: -2.25, Z: 3.125})
}

func TestReadPCDErrors(t *testing.T) {
	logger := golog.NewTestLogger(t)

	// header lines out of order
	_, err := ReadPCD(strings.NewReader("FIELDS x y z\nVERSION .7\n"), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errors.Is(err, spatialmath.ErrInvalidParameter), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "VERSION")

	in := strings.Replace(pcdTestHeader, "FIELDS x y z", "FIELDS x y z rgb", 1)
	_, err = ReadPCD(strings.NewReader(in), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "x y z")

	in = strings.Replace(pcdTestHeader, "DATA ascii", "DATA binary", 1)
	_, err = ReadPCD(strings.NewReader(in), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "ascii")

	in = strings.Replace(pcdTestHeader, "POINTS 2", "POINTS 3", 1)
	_, err = ReadPCD(strings.NewReader(in), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "WIDTH*HEIGHT")

	// malformed point row
	_, err = ReadPCD(strings.NewReader(pcdTestHeader+"1.0 2.0\n3.0 4.0 5.0\n"), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errors.Is(err, spatialmath.ErrInvalidParameter), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "point 0")

	// body shorter than POINTS
	_, err = ReadPCD(strings.NewReader(pcdTestHeader+"1.0 2.0 3.0\n"), logger)
	test.That(t, err, test.ShouldNotBeNil)
}
