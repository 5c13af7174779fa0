/*
Package gtfs imports a GTFS static feed into a transport catalogue.

This package is data-source agnostic - it accepts a zip as bytes, an
io.ReaderAt or a local path. It does NOT handle HTTP downloads.

# Basic Usage

	file, _ := os.Open("gtfs.zip")
	defer file.Close()
	stat, _ := file.Stat()

	cat, err := gtfs.LoadCatalogue(file, stat.Size(), gtfs.Options{})
	if err != nil {
	    log.Fatal(err)
	}

# Mapping

Only stops.txt, routes.txt, trips.txt and stop_times.txt are read.

- Stops are keyed by stop_name; the first row with a given name wins.
  Stations and other location types are skipped.
- Each route becomes one bus named by route_short_name, or route_id when
  the short name is empty or already taken.
- The bus follows the route's longest direction 0 trip. A trip that starts
  and ends at the same stop is a loop. If a direction 1 trip visits the
  same stops in reverse the bus is there-and-back. Anything else is a loop
  traversed once.
- When stop_times.txt carries shape_dist_traveled, the difference between
  consecutive stops becomes a directed road distance, scaled by
  Options.DistanceScale into meters.
*/
package gtfs
