package ews

import (
	"encoding/xml"
	"fmt"

	"ewscal/ewstime"
)

// FolderID identifies a folder either by server ID or by one of the
// well-known distinguished names (inbox, calendar, ...).
type FolderID struct {
	ID            string
	ChangeKey     string
	Distinguished bool
}

func (f FolderID) marshalInto(e *xml.Encoder) error {
	name := "t:FolderId"
	if f.Distinguished {
		name = "t:DistinguishedFolderId"
	}
	start := xml.StartElement{
		Name: xml.Name{Local: name},
		Attr: []xml.Attr{{Name: xml.Name{Local: "Id"}, Value: f.ID}},
	}
	if f.ChangeKey != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "ChangeKey"}, Value: f.ChangeKey})
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	return e.EncodeToken(start.End())
}

// Restriction narrows a FindFolder to folders whose creation time falls
// inside [Since, Until). Either bound may be omitted. Bounds are rendered
// through the strict wire codec, so naive values fail the whole payload.
type Restriction struct {
	Since *ewstime.DateTime
	Until *ewstime.DateTime
}

// FindFolderRequest is a paged FindFolder call. Pages are requested with an
// IndexedPageFolderView anchored at the beginning of the result set; the
// response's paging offset feeds the next request.
type FindFolderRequest struct {
	// Traversal is Shallow, Deep or SoftDeleted.
	Traversal string
	// BaseShape is IdOnly, Default or AllProperties.
	BaseShape string

	PageSize int
	Offset   int

	Restriction *Restriction
	ParentIDs   []FolderID
}

type findFolderShape struct {
	BaseShape string `xml:"t:BaseShape"`
}

type indexedPageView struct {
	MaxEntriesReturned int    `xml:"MaxEntriesReturned,attr"`
	Offset             int    `xml:"Offset,attr"`
	BasePoint          string `xml:"BasePoint,attr"`
}

type restrictionXML struct {
	And struct {
		GTE *fieldCompare `xml:"t:IsGreaterThanOrEqualTo,omitempty"`
		LT  *fieldCompare `xml:"t:IsLessThan,omitempty"`
	} `xml:"t:And"`
}

type fieldCompare struct {
	FieldURI struct {
		FieldURI string `xml:"FieldURI,attr"`
	} `xml:"t:FieldURI"`
	Constant struct {
		Value string `xml:"Value,attr"`
	} `xml:"t:FieldURIOrConstant>t:Constant"`
}

func newFieldCompare(uri string, dt ewstime.DateTime) (*fieldCompare, error) {
	s, err := dt.EWSFormat()
	if err != nil {
		return nil, fmt.Errorf("restriction bound: %w", err)
	}
	fc := &fieldCompare{}
	fc.FieldURI.FieldURI = uri
	fc.Constant.Value = s
	return fc, nil
}

type findFolderXML struct {
	XMLName     xml.Name        `xml:"m:FindFolder"`
	Traversal   string          `xml:"Traversal,attr"`
	FolderShape findFolderShape `xml:"m:FolderShape"`
	IndexedPage indexedPageView `xml:"m:IndexedPageFolderView"`
	Restriction *restrictionXML `xml:"m:Restriction,omitempty"`
	ParentIDs   parentFolderIDs `xml:"m:ParentFolderIds"`
}

type parentFolderIDs struct {
	ids []FolderID
}

func (p parentFolderIDs) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, id := range p.ids {
		if err := id.marshalInto(e); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// Payload renders the FindFolder request body for one page.
func (r *FindFolderRequest) Payload() ([]byte, error) {
	if len(r.ParentIDs) == 0 {
		return nil, fmt.Errorf("find folder: at least one parent folder ID is required")
	}
	traversal := r.Traversal
	if traversal == "" {
		traversal = "Shallow"
	}
	shape := r.BaseShape
	if shape == "" {
		shape = "Default"
	}
	pageSize := r.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}
	w := findFolderXML{
		Traversal:   traversal,
		FolderShape: findFolderShape{BaseShape: shape},
		IndexedPage: indexedPageView{
			MaxEntriesReturned: pageSize,
			Offset:             r.Offset,
			BasePoint:          "Beginning",
		},
		ParentIDs: parentFolderIDs{ids: r.ParentIDs},
	}
	if r.Restriction != nil && (r.Restriction.Since != nil || r.Restriction.Until != nil) {
		rx := &restrictionXML{}
		if r.Restriction.Since != nil {
			fc, err := newFieldCompare("folder:CreationTime", *r.Restriction.Since)
			if err != nil {
				return nil, err
			}
			rx.And.GTE = fc
		}
		if r.Restriction.Until != nil {
			fc, err := newFieldCompare("folder:CreationTime", *r.Restriction.Until)
			if err != nil {
				return nil, err
			}
			rx.And.LT = fc
		}
		w.Restriction = rx
	}
	return xml.MarshalIndent(&w, "", "  ")
}

// Folder is one folder entry in a FindFolder response.
type Folder struct {
	FolderID         ItemID `xml:"FolderId"`
	DisplayName      string `xml:"DisplayName"`
	TotalCount       int    `xml:"TotalCount"`
	ChildFolderCount int    `xml:"ChildFolderCount"`
	UnreadCount      int    `xml:"UnreadCount"`
	FolderClass      string `xml:"FolderClass"`
}

// FindFolderResponse is the decoded page of a FindFolder call. Element names
// on responses carry no prefix after namespace resolution, so the decode tags
// differ from the request side.
type FindFolderResponse struct {
	IndexedPagingOffset     int
	TotalItemsInView        int
	IncludesLastItemInRange bool

	Folders []Folder
}

// rootFolderXML carries the attrs and folder list of the RootFolder element.
type rootFolderXML struct {
	IndexedPagingOffset     int      `xml:"IndexedPagingOffset,attr"`
	TotalItemsInView        int      `xml:"TotalItemsInView,attr"`
	IncludesLastItemInRange bool     `xml:"IncludesLastItemInRange,attr"`
	Folders                 []Folder `xml:"Folders>Folder"`
}

type findFolderResponseXML struct {
	RootFolder rootFolderXML `xml:"ResponseMessages>FindFolderResponseMessage>RootFolder"`
}

// ParseFindFolderResponse decodes one FindFolder response page.
func ParseFindFolderResponse(raw []byte) (*FindFolderResponse, error) {
	var doc findFolderResponseXML
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode find folder response: %w", err)
	}
	return &FindFolderResponse{
		IndexedPagingOffset:     doc.RootFolder.IndexedPagingOffset,
		TotalItemsInView:        doc.RootFolder.TotalItemsInView,
		IncludesLastItemInRange: doc.RootFolder.IncludesLastItemInRange,
		Folders:                 doc.RootFolder.Folders,
	}, nil
}

// Done reports whether this was the final page.
func (r *FindFolderResponse) Done() bool { return r.IncludesLastItemInRange }

// NextOffset returns the offset to request the following page with.
func (r *FindFolderResponse) NextOffset() int { return r.IndexedPagingOffset }
