// Command meshcli drives the mesh→export pipeline end to end: load a
// resource pack directory and a scene JSON describing block placements,
// run the mesher, and write the requested interchange format(s) to disk.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/Schem-at/Schematic-Mesher-sub001/internal/blockmodel"
	"github.com/Schem-at/Schematic-Mesher-sub001/internal/export"
	"github.com/Schem-at/Schematic-Mesher-sub001/internal/mesher"
)

func main() {
	scenePath := flag.String("scene", "", "path to a scene JSON file ({\"blocks\":[{\"x\":0,\"y\":0,\"z\":0,\"name\":\"minecraft:stone\"}]})")
	packDir := flag.String("pack", "", "path to a resource pack directory (assets/<namespace>/{blockstates,models,textures})")
	outDir := flag.String("out", ".", "output directory")
	name := flag.String("name", "mesh", "base output filename (without extension)")
	format := flag.String("format", "glb", "export format: glb, obj, usdz, or all")
	greedy := flag.Bool("greedy", false, "enable greedy meshing")
	ao := flag.Bool("ao", true, "enable ambient occlusion")
	flag.Parse()

	if *scenePath == "" || *packDir == "" {
		fmt.Fprintln(os.Stderr, "usage: meshcli -scene scene.json -pack ./resourcepack [-out dir] [-name mesh] [-format glb|obj|usdz|all]")
		os.Exit(2)
	}

	src, err := loadScene(*scenePath)
	if err != nil {
		log.Fatalf("meshcli: %v", err)
	}
	pack := newDirPack(*packDir)

	cfg := mesher.DefaultConfig()
	cfg.GreedyMeshing = *greedy
	cfg.AmbientOcclusion = *ao

	out, err := mesher.Mesh(src, pack, nil, cfg)
	if err != nil {
		log.Fatalf("meshcli: mesh: %v", err)
	}
	for _, w := range out.Warnings {
		log.Printf("meshcli: warning: %s", w)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("meshcli: %v", err)
	}

	switch *format {
	case "glb":
		writeGLB(out, pack, *outDir, *name)
	case "obj":
		writeOBJ(out, pack, *outDir, *name)
	case "usdz":
		writeUSDZ(out, pack, *outDir, *name)
	case "all":
		writeGLB(out, pack, *outDir, *name)
		writeOBJ(out, pack, *outDir, *name)
		writeUSDZ(out, pack, *outDir, *name)
	default:
		log.Fatalf("meshcli: unknown format %q (want glb, obj, usdz, or all)", *format)
	}
}

func writeGLB(out mesher.MesherOutput, pack blockmodel.ResourcePack, outDir, name string) {
	data, err := export.ExportGLB(out, pack)
	if err != nil {
		log.Fatalf("meshcli: export glb: %v", err)
	}
	path := filepath.Join(outDir, name+".glb")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("meshcli: write %s: %v", path, err)
	}
	log.Printf("meshcli: wrote %s", path)
}

func writeOBJ(out mesher.MesherOutput, pack blockmodel.ResourcePack, outDir, name string) {
	result, err := export.ExportOBJ(out, pack, name)
	if err != nil {
		log.Fatalf("meshcli: export obj: %v", err)
	}
	writeTextFile(filepath.Join(outDir, name+".obj"), result.OBJ)
	writeTextFile(filepath.Join(outDir, name+".mtl"), result.MTL)
	for file, data := range result.Textures {
		if err := os.WriteFile(filepath.Join(outDir, file), data, 0o644); err != nil {
			log.Fatalf("meshcli: write %s: %v", file, err)
		}
	}
	log.Printf("meshcli: wrote %s.obj, %s.mtl, and %d texture(s)", name, name, len(result.Textures))
}

func writeUSDZ(out mesher.MesherOutput, pack blockmodel.ResourcePack, outDir, name string) {
	data, err := export.ExportUSDZ(out, pack)
	if err != nil {
		log.Fatalf("meshcli: export usdz: %v", err)
	}
	path := filepath.Join(outDir, name+".usdz")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("meshcli: write %s: %v", path, err)
	}
	log.Printf("meshcli: wrote %s", path)
}

func writeTextFile(path, content string) {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		log.Fatalf("meshcli: write %s: %v", path, err)
	}
}
