package settings

import (
	"fmt"
	"os"
)

var home, _ = os.UserHomeDir()
var AppDir = home + "/.rcountries/"
var ConfigFile = AppDir + "config.ini"

// Init creates the application directory.
func Init() error {
	if _, err := os.Stat(AppDir); os.IsNotExist(err) {
		return os.Mkdir(AppDir, 0755)
	}
	return nil
}

// JsonDump writes data to filepath, replacing the file if it exists.
func JsonDump(data []byte, filepath string) error {
	file, err := os.Create(filepath)

	if err != nil {
		return err
	}

	defer file.Close()
	n, err := file.Write(data)

	if err != nil {
		return err
	}

	if n != len(data) {
		return fmt.Errorf("error dumping %d bytes to %s", len(data), filepath)
	}
	return nil
}
