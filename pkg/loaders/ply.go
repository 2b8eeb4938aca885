package loaders

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/df07/go-raycaster/pkg/core"
)

// PLYHeader represents the parsed header information from a PLY file
type PLYHeader struct {
	Format      string // "binary_little_endian", "binary_big_endian", or "ascii"
	Version     string // Usually "1.0"
	VertexCount int
	FaceCount   int
	VertexProps []PLYProperty
	FaceProps   []PLYProperty
}

// PLYProperty represents a property definition in the PLY header
type PLYProperty struct {
	Name     string
	Type     string
	IsList   bool
	ListType string // For list properties, the type of the count
	DataType string // For list properties, the type of the data
}

// PLYData contains the triangle mesh loaded from a PLY file
type PLYData struct {
	Vertices []core.Vec3 // Vertex positions (x, y, z)
	Faces    []int       // Triangle indices (3 per triangle)
}

// TriangleCount returns the number of triangles in the mesh
func (d *PLYData) TriangleCount() int {
	return len(d.Faces) / 3
}

// Triangle returns the vertices of the i-th triangle
func (d *PLYData) Triangle(i int) (a, b, c core.Vec3) {
	return d.Vertices[d.Faces[3*i]], d.Vertices[d.Faces[3*i+1]], d.Vertices[d.Faces[3*i+2]]
}

// LoadPLY loads a PLY file and returns its vertex and face data
func LoadPLY(filename string) (*PLYData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open PLY file")
	}
	defer file.Close()

	data, err := ReadPLY(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", filename)
	}
	return data, nil
}

// ReadPLY parses a PLY stream. Polygonal faces are split into triangle fans.
func ReadPLY(r io.Reader) (*PLYData, error) {
	reader := bufio.NewReader(r)

	header, err := parsePLYHeader(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse PLY header")
	}

	var body plyBody
	switch header.Format {
	case "ascii":
		body = newASCIIBody(reader)
	case "binary_little_endian":
		body = &binaryBody{r: reader, order: binary.LittleEndian}
	case "binary_big_endian":
		body = &binaryBody{r: reader, order: binary.BigEndian}
	default:
		return nil, errors.Errorf("unsupported PLY format: %s", header.Format)
	}

	return readPLYBody(body, header)
}

// parsePLYHeader parses the PLY header up to and including end_header
func parsePLYHeader(reader *bufio.Reader) (*PLYHeader, error) {
	header := &PLYHeader{}

	magic, err := reader.ReadString('\n')
	if err != nil || strings.TrimSpace(magic) != "ply" {
		return nil, errors.New("missing ply magic number")
	}

	var currentElement string
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil, errors.Wrap(err, "header ended before end_header")
		}
		line = strings.TrimSpace(line)

		if line == "end_header" {
			break
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "format":
			if len(parts) >= 3 {
				header.Format = parts[1]
				header.Version = parts[2]
			}
		case "comment", "obj_info":
			// Ignore comments
		case "element":
			if len(parts) < 3 {
				return nil, errors.Errorf("invalid element line: %q", line)
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil {
				return nil, errors.Errorf("invalid element count: %s", parts[2])
			}
			if count < 0 {
				return nil, errors.Errorf("negative element count %d for %s", count, parts[1])
			}

			currentElement = parts[1]
			switch currentElement {
			case "vertex":
				header.VertexCount = count
			case "face":
				header.FaceCount = count
			default:
				if count > 0 {
					return nil, errors.Errorf("unsupported element %q", currentElement)
				}
			}
		case "property":
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, errors.Wrap(err, "failed to parse property")
			}

			switch currentElement {
			case "vertex":
				if prop.IsList {
					return nil, errors.Errorf("list property %q on vertex is not supported", prop.Name)
				}
				header.VertexProps = append(header.VertexProps, prop)
			case "face":
				header.FaceProps = append(header.FaceProps, prop)
			}
		}
	}

	return header, nil
}

// parsePLYProperty parses a property line from the PLY header
func parsePLYProperty(parts []string) (PLYProperty, error) {
	if len(parts) < 2 {
		return PLYProperty{}, errors.New("invalid property definition")
	}

	prop := PLYProperty{}

	if parts[0] == "list" {
		if len(parts) < 4 {
			return PLYProperty{}, errors.New("invalid list property definition")
		}
		prop.IsList = true
		prop.ListType = parts[1]
		prop.DataType = parts[2]
		prop.Name = parts[3]
	} else {
		prop.Type = parts[0]
		prop.Name = parts[1]
	}

	types := []string{prop.Type}
	if prop.IsList {
		types = []string{prop.ListType, prop.DataType}
	}
	for _, typ := range types {
		if _, err := scalarSize(typ); err != nil {
			return PLYProperty{}, err
		}
	}
	return prop, nil
}

// plyBody reads scalar values from the body of a PLY file
type plyBody interface {
	read(typ string) (float64, error)
}

type asciiBody struct {
	scanner *bufio.Scanner
}

func newASCIIBody(r io.Reader) *asciiBody {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &asciiBody{scanner: scanner}
}

func (b *asciiBody) read(string) (float64, error) {
	if !b.scanner.Scan() {
		if err := b.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	return strconv.ParseFloat(b.scanner.Text(), 64)
}

type binaryBody struct {
	r     io.Reader
	order binary.ByteOrder
	buf   [8]byte
}

func (b *binaryBody) read(typ string) (float64, error) {
	size, err := scalarSize(typ)
	if err != nil {
		return 0, err
	}
	buf := b.buf[:size]
	if _, err := io.ReadFull(b.r, buf); err != nil {
		return 0, err
	}

	switch typ {
	case "char", "int8":
		return float64(int8(buf[0])), nil
	case "uchar", "uint8":
		return float64(buf[0]), nil
	case "short", "int16":
		return float64(int16(b.order.Uint16(buf))), nil
	case "ushort", "uint16":
		return float64(b.order.Uint16(buf)), nil
	case "int", "int32":
		return float64(int32(b.order.Uint32(buf))), nil
	case "uint", "uint32":
		return float64(b.order.Uint32(buf)), nil
	case "float", "float32":
		return float64(math.Float32frombits(b.order.Uint32(buf))), nil
	default: // double, float64
		return math.Float64frombits(b.order.Uint64(buf)), nil
	}
}

// scalarSize returns the size in bytes of a PLY scalar type
func scalarSize(typ string) (int, error) {
	switch typ {
	case "char", "int8", "uchar", "uint8":
		return 1, nil
	case "short", "int16", "ushort", "uint16":
		return 2, nil
	case "int", "int32", "uint", "uint32", "float", "float32":
		return 4, nil
	case "double", "float64":
		return 8, nil
	default:
		return 0, errors.Errorf("unsupported property type: %s", typ)
	}
}

// maxPreallocElements caps slice capacity taken from header counts; larger
// meshes grow by append as the body is actually read.
const maxPreallocElements = 1 << 20

// readPLYBody reads vertex positions and face indices, skipping other properties
func readPLYBody(body plyBody, header *PLYHeader) (*PLYData, error) {
	data := &PLYData{
		Vertices: make([]core.Vec3, 0, min(header.VertexCount, maxPreallocElements)),
		Faces:    make([]int, 0, 3*min(header.FaceCount, maxPreallocElements)),
	}

	for i := 0; i < header.VertexCount; i++ {
		var v core.Vec3
		for _, prop := range header.VertexProps {
			value, err := body.read(prop.Type)
			if err != nil {
				return nil, errors.Wrapf(err, "vertex %d property %s", i, prop.Name)
			}
			switch prop.Name {
			case "x":
				v.X = value
			case "y":
				v.Y = value
			case "z":
				v.Z = value
			}
		}
		data.Vertices = append(data.Vertices, v)
	}

	var indices []int
	for i := 0; i < header.FaceCount; i++ {
		for _, prop := range header.FaceProps {
			if !prop.IsList {
				if _, err := body.read(prop.Type); err != nil {
					return nil, errors.Wrapf(err, "face %d property %s", i, prop.Name)
				}
				continue
			}

			count, err := body.read(prop.ListType)
			if err != nil {
				return nil, errors.Wrapf(err, "face %d list count", i)
			}

			indices = indices[:0]
			for j := 0; j < int(count); j++ {
				value, err := body.read(prop.DataType)
				if err != nil {
					return nil, errors.Wrapf(err, "face %d index %d", i, j)
				}
				indices = append(indices, int(value))
			}

			if prop.Name != "vertex_indices" && prop.Name != "vertex_index" {
				continue
			}
			if len(indices) < 3 {
				return nil, errors.Errorf("face %d has %d vertices", i, len(indices))
			}
			for _, idx := range indices {
				if idx < 0 || idx >= len(data.Vertices) {
					return nil, errors.Errorf("face %d references vertex %d of %d", i, idx, len(data.Vertices))
				}
			}

			// Fan triangulation around the first vertex
			for k := 1; k+1 < len(indices); k++ {
				data.Faces = append(data.Faces, indices[0], indices[k], indices[k+1])
			}
		}
	}

	return data, nil
}
