package resource

import (
	"bytes"
	"compress/lzw"
	"fmt"
	"io"
)

type CompressionMethod uint8

const (
	MethodNone CompressionMethod = iota
	MethodLZW
)

type DecompressionFn = func(r io.Reader, dst []byte) error

type CompressionFn = func(w io.Writer, src []byte) error

type DecompressorLUT map[CompressionMethod]DecompressionFn

type CompressorLUT map[CompressionMethod]CompressionFn

func DecompressNone(r io.Reader, dst []byte) error {
	_, err := io.ReadFull(r, dst)
	return err
}

func DecompressLZW(r io.Reader, dst []byte) error {
	lzwr := lzw.NewReader(r, lzw.LSB, 8)
	defer lzwr.Close()
	_, err := io.ReadFull(lzwr, dst)
	return err
}

func CompressNone(w io.Writer, src []byte) error {
	_, err := w.Write(src)
	return err
}

func CompressLZW(w io.Writer, src []byte) error {
	lzww := lzw.NewWriter(w, lzw.LSB, 8)
	if _, err := lzww.Write(src); err != nil {
		lzww.Close()
		return err
	}
	return lzww.Close()
}

var Decompressors = DecompressorLUT{
	MethodNone: DecompressNone,
	MethodLZW:  DecompressLZW,
}

var Compressors = CompressorLUT{
	MethodNone: CompressNone,
	MethodLZW:  CompressLZW,
}

func compress(method CompressionMethod, src []byte) ([]byte, error) {
	fn, ok := Compressors[method]
	if !ok {
		return nil, fmt.Errorf("unhandled compression type: %d", method)
	}
	var buf bytes.Buffer
	if err := fn(&buf, src); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompress(method CompressionMethod, src []byte, size int) ([]byte, error) {
	fn, ok := Decompressors[method]
	if !ok {
		return nil, fmt.Errorf("unhandled compression type: %d", method)
	}
	dst := make([]byte, size)
	if err := fn(bytes.NewReader(src), dst); err != nil {
		return nil, err
	}
	return dst, nil
}
