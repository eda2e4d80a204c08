package track

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/neondrift/racesim/pkg/config"
	"github.com/neondrift/racesim/pkg/simulation/track"
)

func NewTrackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "track",
		Short: "commands for inspecting courses",
	}
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newInfoCmd())
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "lists the built-in courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSEGMENTS\tLENGTH\tCLOSED")
			for _, c := range track.Courses() {
				layout := track.Compile(c)
				fmt.Fprintf(w, "%s\t%d\t%.1f\t%v\n",
					c.Name, layout.SegmentCount, layout.Length, c.Closed())
			}
			return w.Flush()
		},
	}
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "compiles a course and prints its layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showInfo()
		},
	}
	cmd.Flags().StringVar(&config.Course,
		"course",
		"neon-city",
		"built-in course to inspect")
	cmd.Flags().StringVar(&config.CourseFile,
		"course-file",
		"",
		"YAML course definition (overrides --course)")
	return cmd
}

func showInfo() error {
	var course *track.Course
	var err error
	if config.CourseFile != "" {
		course, err = track.LoadCourse(config.CourseFile)
	} else {
		course, err = track.CourseByName(config.Course)
	}
	if err != nil {
		return err
	}

	layout := track.Compile(course)
	fmt.Printf("course: %s\n", layout.Name)
	fmt.Printf("segments: %d  length: %.1f  turn sum: %.1f  closed: %v\n",
		layout.SegmentCount, layout.Length, course.TurnSum(), course.Closed())
	fmt.Printf("checkpoints:")
	for _, cp := range layout.Checkpoints {
		fmt.Printf(" %.1f", cp)
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "IDX\tX\tY\tZ\tHEADING\tTURN\tELEVATION\tBANKING\tSTYLE\tLENGTH\tWAYPOINT")
	for i := 0; i < layout.SegmentCount; i++ {
		seg := layout.Segments[i]
		wp := layout.Waypoints[i]
		fmt.Fprintf(w, "%d\t%.1f\t%.1f\t%.1f\t%.1f\t%s\t%s\t%s\t%s\t%.1f\t(%.1f %.1f %.1f)\n",
			i, seg.X, seg.Y, seg.Z, seg.Rotation,
			seg.Turn, seg.Elevation, seg.Banking, seg.Style, seg.Length,
			wp.X, wp.Y, wp.Z)
	}
	return w.Flush()
}
