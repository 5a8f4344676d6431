package hdf5

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestCreateEmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "empty.hdf")

	f, err := Create(testFile)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if !f.IsWritable() {
		t.Error("File should be writable")
	}

	if err := f.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if _, err := os.Stat(testFile); os.IsNotExist(err) {
		t.Fatal("File was not created")
	}

	f2, err := Open(testFile)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f2.Close()

	if f2.Version() < 2 {
		t.Errorf("Expected superblock version >= 2, got %d", f2.Version())
	}

	names, err := f2.Datasets()
	if err != nil {
		t.Fatalf("Datasets failed: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("Expected no datasets, got %v", names)
	}
}

func TestExternalDatasetRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "bands.hdf")

	f, err := Create(testFile)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err = f.CreateExternalDataset("band1", Int16, [2]uint64{100, 200},
		"band1.img", 0,
		WithDimensionNames("YDim_Grid", "XDim_Grid"),
		WithAttribute("long_name", "band 1 reflectance"),
		WithAttribute("_FillValue", int32(-9999)),
		WithAttribute("scale_factor", float32(0.0001)),
	)
	if err != nil {
		t.Fatalf("CreateExternalDataset failed: %v", err)
	}

	_, err = f.CreateExternalDataset("band2", Uint8, [2]uint64{100, 200}, "band2.img", 0)
	if err != nil {
		t.Fatalf("CreateExternalDataset band2 failed: %v", err)
	}

	if err := f.SetAttribute("Satellite", "LANDSAT_7"); err != nil {
		t.Fatalf("SetAttribute failed: %v", err)
	}
	if err := f.SetAttribute("WRS_Path", int16(45)); err != nil {
		t.Fatalf("SetAttribute failed: %v", err)
	}
	if err := f.SetAttribute("ReflGains", []float64{0.77, 0.8}); err != nil {
		t.Fatalf("SetAttribute failed: %v", err)
	}

	if err := f.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	f2, err := Open(testFile)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f2.Close()

	names, err := f2.Datasets()
	if err != nil {
		t.Fatalf("Datasets failed: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"band1", "band2"}) {
		t.Errorf("Expected datasets [band1 band2] in creation order, got %v", names)
	}

	ds, err := f2.Dataset("band1")
	if err != nil {
		t.Fatalf("Dataset failed: %v", err)
	}

	dims := ds.Dims()
	if !reflect.DeepEqual(dims, []uint64{100, 200}) {
		t.Errorf("Expected dims [100 200], got %v", dims)
	}

	dt, err := ds.Datatype()
	if err != nil {
		t.Fatalf("Datatype failed: %v", err)
	}
	if dt != Int16 {
		t.Errorf("Expected Int16, got %v", dt)
	}

	ext, err := ds.ExternalFiles()
	if err != nil {
		t.Fatalf("ExternalFiles failed: %v", err)
	}
	if len(ext) != 1 {
		t.Fatalf("Expected 1 external file, got %d", len(ext))
	}
	if ext[0].Name != "band1.img" {
		t.Errorf("Expected external file band1.img, got %q", ext[0].Name)
	}
	if ext[0].Offset != 0 {
		t.Errorf("Expected offset 0, got %d", ext[0].Offset)
	}
	wantSize := uint64(100 * 200 * 2)
	if ext[0].Size != wantSize {
		t.Errorf("Expected size %d, got %d", wantSize, ext[0].Size)
	}
}

func TestDatasetAttributeOrder(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "attrs.hdf")

	f, err := Create(testFile)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err = f.CreateExternalDataset("band1", Int16, [2]uint64{10, 10},
		"band1.img", 0,
		WithDimensionNames("YDim_Grid", "XDim_Grid"),
		WithAttribute("long_name", "band 1"),
		WithAttribute("units", "reflectance"),
		WithAttribute("_FillValue", int32(-9999)),
	)
	if err != nil {
		t.Fatalf("CreateExternalDataset failed: %v", err)
	}

	if err := f.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	f2, err := Open(testFile)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f2.Close()

	ds, err := f2.Dataset("band1")
	if err != nil {
		t.Fatalf("Dataset failed: %v", err)
	}

	want := []string{"DIMENSION_NAMES", "long_name", "units", "_FillValue"}
	got := ds.Attributes()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected attribute order %v, got %v", want, got)
	}

	dimAttr := ds.Attribute("DIMENSION_NAMES")
	if dimAttr == nil {
		t.Fatal("DIMENSION_NAMES attribute not found")
	}
	dimVal, err := dimAttr.Value()
	if err != nil {
		t.Fatalf("DIMENSION_NAMES value failed: %v", err)
	}
	if !reflect.DeepEqual(dimVal, []string{"YDim_Grid", "XDim_Grid"}) {
		t.Errorf("Expected dimension names [YDim_Grid XDim_Grid], got %v", dimVal)
	}

	ln, err := ds.Attribute("long_name").StringValue()
	if err != nil {
		t.Fatalf("long_name value failed: %v", err)
	}
	if ln != "band 1" {
		t.Errorf("Expected long_name %q, got %q", "band 1", ln)
	}

	fill, err := ds.Attribute("_FillValue").Value()
	if err != nil {
		t.Fatalf("_FillValue failed: %v", err)
	}
	if fill != int32(-9999) {
		t.Errorf("Expected _FillValue int32(-9999), got %v (%T)", fill, fill)
	}
}

func TestGlobalAttributes(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "global.hdf")

	f, err := Create(testFile)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	attrs := []struct {
		name  string
		value interface{}
	}{
		{"DataProvider", "USGS/EROS"},
		{"Satellite", "LANDSAT_8"},
		{"SolarZenith", float32(42.5)},
		{"WRS_Path", int16(45)},
		{"ReflGains", []float64{1.0, 2.0, 3.0}},
		{"UpperLeftCornerLatLong", []float64{46.5, -120.2}},
	}
	for _, a := range attrs {
		if err := f.SetAttribute(a.name, a.value); err != nil {
			t.Fatalf("SetAttribute(%q) failed: %v", a.name, err)
		}
	}

	if err := f.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	f2, err := Open(testFile)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f2.Close()

	var want []string
	for _, a := range attrs {
		want = append(want, a.name)
	}
	got := f2.Attributes()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected attribute order %v, got %v", want, got)
	}

	sat, err := f2.Attribute("Satellite").StringValue()
	if err != nil {
		t.Fatalf("Satellite value failed: %v", err)
	}
	if sat != "LANDSAT_8" {
		t.Errorf("Expected Satellite LANDSAT_8, got %q", sat)
	}

	zen, err := f2.Attribute("SolarZenith").Value()
	if err != nil {
		t.Fatalf("SolarZenith value failed: %v", err)
	}
	if zen != float32(42.5) {
		t.Errorf("Expected SolarZenith float32(42.5), got %v (%T)", zen, zen)
	}

	gains, err := f2.Attribute("ReflGains").Value()
	if err != nil {
		t.Fatalf("ReflGains value failed: %v", err)
	}
	if !reflect.DeepEqual(gains, []float64{1.0, 2.0, 3.0}) {
		t.Errorf("Expected ReflGains [1 2 3], got %v", gains)
	}
}

func TestCreateExternalDatasetErrors(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "errors.hdf")

	f, err := Create(testFile)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	defer f.Close()

	if _, err := f.CreateExternalDataset("", Int16, [2]uint64{10, 10}, "x.img", 0); err == nil {
		t.Error("Expected error for empty dataset name")
	}

	if _, err := f.CreateExternalDataset("band1", Int16, [2]uint64{10, 10}, "", 0); err == nil {
		t.Error("Expected error for empty external file name")
	}

	if _, err := f.CreateExternalDataset("band1", Int16, [2]uint64{0, 10}, "x.img", 0); err == nil {
		t.Error("Expected error for zero dimension")
	}

	if _, err := f.CreateExternalDataset("band1", Int16, [2]uint64{10, 10}, "x.img", 0); err != nil {
		t.Fatalf("CreateExternalDataset failed: %v", err)
	}
	if _, err := f.CreateExternalDataset("band1", Int16, [2]uint64{10, 10}, "x.img", 0); err == nil {
		t.Error("Expected error for duplicate dataset name")
	}
}

func TestReadOnlyFileRejectsWrites(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "readonly.hdf")

	f, err := Create(testFile)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	f2, err := Open(testFile)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f2.Close()

	if err := f2.SetAttribute("x", "y"); err != ErrReadOnly {
		t.Errorf("Expected ErrReadOnly, got %v", err)
	}
	if _, err := f2.CreateExternalDataset("band1", Int16, [2]uint64{10, 10}, "x.img", 0); err != ErrReadOnly {
		t.Errorf("Expected ErrReadOnly, got %v", err)
	}
}
